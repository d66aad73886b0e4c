package entity

import (
	"github.com/google/uuid"
)

type Event struct {
	Base
	Name     string    `db:"name"`
	Price    float64   `db:"price"`
	Capacity int       `db:"capacity"`
	OwnerID  uuid.UUID `db:"owner_id"`

	// Owner is populated by queries that join the users table
	Owner *User
	// RegisteredUsers is insertion-ordered and never exceeds Capacity
	RegisteredUsers []uuid.UUID
}
