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
	"event-hub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	CreateEvent(ctx context.Context, userID string, req *request.CreateEventRequest) (*response.EventResponse, error)
	GetMyEvents(ctx context.Context, userID string) ([]response.EventResponse, error)
	GetOtherEvents(ctx context.Context, userID string) ([]response.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID string) error
	RegisterForEvent(ctx context.Context, eventID, userID string) ([]response.EventResponse, bool, error)
}

type eventService struct {
	repo   *repository.Repository
	mailer email.Sender
	log    *zap.Logger
}

func NewEventService(repo *repository.Repository, mailer email.Sender, log *zap.Logger) EventService {
	return &eventService{
		repo:   repo,
		mailer: mailer,
		log:    log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, userID string, req *request.CreateEventRequest) (*response.EventResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil || owner == nil {
		s.log.Error("Failed to resolve event owner", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to resolve owner")
	}

	// 2. Create event with an empty registered-user list
	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.EventName,
		Price:           req.Price,
		Capacity:        req.Capacity,
		OwnerID:         ownerID,
		Owner:           owner,
		RegisteredUsers: []uuid.UUID{},
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("name", req.EventName),
			zap.String("owner_id", userID))
		return nil, fmt.Errorf("failed to create event")
	}

	// 3. Notify the organizer, fire-and-forget
	s.mailer.SendAsync(owner.Email,
		fmt.Sprintf("Your event %q is live", event.Name),
		fmt.Sprintf("Your event %q (capacity %d) has been created.", event.Name, event.Capacity))

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("owner_id", userID))

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) GetMyEvents(ctx context.Context, userID string) ([]response.EventResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	events, err := s.repo.Event.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to get own events", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get events")
	}

	return response.EventsToResponse(events), nil
}

func (s *eventService) GetOtherEvents(ctx context.Context, userID string) ([]response.EventResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	events, err := s.repo.Event.FindByOwnerNot(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to get other events", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get events")
	}

	return response.EventsToResponse(events), nil
}

// DeleteEvent removes an event by ID. Any authenticated caller may delete any
// event; there is no ownership check.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", eventID))
		return fmt.Errorf("failed to find event")
	}
	if event == nil {
		return fmt.Errorf("Event not found")
	}

	if err := s.repo.Event.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete event", zap.Error(err), zap.String("event_id", eventID))
		return fmt.Errorf("failed to delete event")
	}

	return nil
}

// RegisterForEvent appends the caller to the event and returns every event
// they are registered for. The returned flag reports whether the confirmation
// email went out; a failed email never rolls back the registration.
func (s *eventService) RegisterForEvent(ctx context.Context, eventID, userID string) ([]response.EventResponse, bool, error) {
	evID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	usrID, err := uuid.Parse(userID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, evID)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", eventID))
		return nil, false, fmt.Errorf("failed to find event")
	}
	if event == nil {
		return nil, false, fmt.Errorf("Event not found")
	}

	// Capacity and duplicate checks run inside the repository transaction
	if err := s.repo.Event.Register(ctx, evID, usrID); err != nil {
		s.log.Warn("Registration rejected",
			zap.Error(err),
			zap.String("event_id", eventID),
			zap.String("user_id", userID))
		return nil, false, err
	}

	emailSent := s.sendConfirmation(ctx, usrID, event.Name)

	events, err := s.repo.Event.FindByRegisteredUser(ctx, usrID)
	if err != nil {
		s.log.Error("Failed to list registered events", zap.Error(err), zap.String("user_id", userID))
		return nil, emailSent, fmt.Errorf("failed to get registered events")
	}

	return response.EventsToResponse(events), emailSent, nil
}

func (s *eventService) sendConfirmation(ctx context.Context, userID uuid.UUID, eventName string) bool {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Warn("No user record for confirmation email", zap.String("user_id", userID.String()))
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.mailer.Send(sendCtx, user.Email,
		fmt.Sprintf("Registration confirmed: %s", eventName),
		fmt.Sprintf("You are registered for %q. See you there!", eventName)); err != nil {
		return false
	}
	return true
}
