package repository

import (
	"event-hub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Event EventRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Event: NewEventRepository(db, log),
	}
}
