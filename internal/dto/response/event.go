package response

import (
	"time"

	"event-hub/internal/data/entity"
)

// OwnerResponse carries the owner identity fields events are annotated with
type OwnerResponse struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Role     entity.UserRole `json:"role"`
	Activity bool            `json:"activity"`
}

type EventResponse struct {
	ID              string        `json:"id"`
	EventName       string        `json:"eventName"`
	Price           float64       `json:"price"`
	Capacity        int           `json:"capacity"`
	Owner           OwnerResponse `json:"user"`
	RegisteredUsers []string      `json:"registeredUsers"`
	CreatedAt       time.Time     `json:"created_at"`
}

func EventToResponse(event *entity.Event) EventResponse {
	resp := EventResponse{
		ID:              event.ID.String(),
		EventName:       event.Name,
		Price:           event.Price,
		Capacity:        event.Capacity,
		RegisteredUsers: make([]string, len(event.RegisteredUsers)),
		CreatedAt:       event.CreatedAt,
	}

	for i, id := range event.RegisteredUsers {
		resp.RegisteredUsers[i] = id.String()
	}

	if event.Owner != nil {
		resp.Owner = OwnerResponse{
			ID:       event.Owner.ID.String(),
			Email:    event.Owner.Email,
			Phone:    event.Owner.Phone,
			Role:     event.Owner.Role,
			Activity: event.Owner.Activity,
		}
	}

	return resp
}

func EventsToResponse(events []*entity.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = EventToResponse(event)
	}
	return responses
}
