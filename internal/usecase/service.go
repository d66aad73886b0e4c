package usecase

import (
	"event-hub/internal/data/repository"
	"event-hub/pkg/email"
	"event-hub/pkg/token"
	"event-hub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	User  UserService
	Event EventService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	tokens *token.Manager,
	blacklist *token.Blacklist,
	mailer email.Sender,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:  NewAuthService(repo.User, tokens, blacklist, mailer, log),
		User:  NewUserService(repo.User, log),
		Event: NewEventService(repo, mailer, log),
	}
}
