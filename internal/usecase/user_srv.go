package usecase

import (
	"context"
	"fmt"
	"time"

	"event-hub/internal/data/entity"
	"event-hub/internal/data/repository"
	"event-hub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
	GetNonAdminUsers(ctx context.Context) ([]response.UserResponse, error)
	UpdateRole(ctx context.Context, userID, role string) error
	ToggleActivity(ctx context.Context, userID string) (bool, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users")
	}

	return response.UsersToResponse(users), nil
}

func (us *userService) GetNonAdminUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindByRoleNot(ctx, entity.RoleAdmin)
	if err != nil {
		us.log.Error("Failed to get non-admin users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users")
	}

	return response.UsersToResponse(users), nil
}

func (us *userService) UpdateRole(ctx context.Context, userID, role string) error {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if !entity.ValidRole(role) {
		return fmt.Errorf("invalid role %s", role)
	}

	user.Role = entity.UserRole(role)
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update role",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("role", role))
		return fmt.Errorf("failed to update role")
	}

	us.log.Info("User role updated",
		zap.String("user_id", userID),
		zap.String("role", role))
	return nil
}

// ToggleActivity flips the active flag and returns the new state
func (us *userService) ToggleActivity(ctx context.Context, userID string) (bool, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return false, err
	}

	user.Activity = !user.Activity
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to toggle activity",
			zap.Error(err),
			zap.String("user_id", userID))
		return false, fmt.Errorf("failed to toggle activity")
	}

	us.log.Info("User activity toggled",
		zap.String("user_id", userID),
		zap.Bool("activity", user.Activity))
	return user.Activity, nil
}

// DeleteUser removes the user and cascades to every event they own
func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := us.userRepo.DeleteCascade(ctx, user.ID); err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to delete user")
	}

	return nil
}

func (us *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("User not found")
	}

	return user, nil
}
