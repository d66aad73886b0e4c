package usecase

import (
	"context"
	"fmt"
	"time"

	"event-hub/internal/data/entity"
	"event-hub/internal/data/repository"
	"event-hub/internal/dto/request"
	"event-hub/internal/dto/response"
	"event-hub/pkg/email"
	"event-hub/pkg/token"
	"event-hub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// adminBootstrapEmail registers straight into the Admin role
const adminBootstrapEmail = "admin@gmail.com"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    *token.Manager
	blacklist *token.Blacklist
	mailer    email.Sender
	log       *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *token.Manager,
	blacklist *token.Blacklist,
	mailer email.Sender,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		blacklist: blacklist,
		mailer:    mailer,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email already registered
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("User already exists. Please login.")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. New accounts are plain users, except the admin bootstrap address
	role := entity.RoleUser
	if req.Email == adminBootstrapEmail {
		role = entity.RoleAdmin
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         role,
		Activity:     true,
	}

	// 5. Save user
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Welcome email, fire-and-forget
	s.mailer.SendAsync(user.Email,
		"Welcome to Event Hub",
		"Your account has been created. Please login to see events.")

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("user does not exist. please signup")
	}

	// 3. Disabled accounts cannot login even with the right password
	if !user.Activity {
		s.log.Warn("Disabled account tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("you have been disabled by admin.")
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("Email address and password do not match.")
	}

	// 5. Issue token keyed by email and role
	signed, expiresAt, err := s.tokens.Generate(user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("an error occurred. please try again later")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.LoginResponse{
		Token:     signed,
		User:      user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the presented token for the rest of the process lifetime
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("invalid token")
	}

	s.blacklist.Revoke(tokenString)
	s.log.Info("User logged out, token revoked")
	return nil
}
