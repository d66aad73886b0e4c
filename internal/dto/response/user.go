package response

import (
	"time"

	"event-hub/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Role      entity.UserRole `json:"role"`
	Activity  bool            `json:"activity"`
	CreatedAt time.Time       `json:"created_at"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	User      string          `json:"user"`
	Role      entity.UserRole `json:"role"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Activity:  user.Activity,
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = UserToResponse(user)
	}
	return responses
}
