package usecase

import (
	"context"
	"errors"
	"testing"

	"event-hub/internal/data/entity"
	"event-hub/internal/data/repository"
	"event-hub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEventService(userRepo *MockUserRepository, eventRepo *MockEventRepository, mailer *MockSender) EventService {
	repo := &repository.Repository{User: userRepo, Event: eventRepo}
	return NewEventService(repo, mailer, zap.NewNop())
}

func TestCreateEventSuccess(t *testing.T) {
	userRepo := &MockUserRepository{}
	eventRepo := &MockEventRepository{}
	mailer := &MockSender{}
	service := newEventService(userRepo, eventRepo, mailer)

	owner := testUser("organizer@example.com", entity.RoleOrganizer, true)
	userRepo.On("FindByID", mock.Anything, owner.ID).Return(owner, nil)
	eventRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.Event) bool {
		return e.Name == "Tech Meetup" && e.Capacity == 50 && e.OwnerID == owner.ID &&
			len(e.RegisteredUsers) == 0
	})).Return(nil)
	mailer.On("SendAsync", owner.Email, mock.Anything, mock.Anything).Return()

	resp, err := service.CreateEvent(context.Background(), owner.ID.String(), &request.CreateEventRequest{
		EventName: "Tech Meetup",
		Price:     100,
		Capacity:  50,
	})

	require.NoError(t, err)
	assert.Equal(t, "Tech Meetup", resp.EventName)
	assert.Equal(t, float64(100), resp.Price)
	assert.Empty(t, resp.RegisteredUsers)
	eventRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestCreateEventValidation(t *testing.T) {
	eventRepo := &MockEventRepository{}
	service := newEventService(&MockUserRepository{}, eventRepo, &MockSender{})

	_, err := service.CreateEvent(context.Background(), uuid.New().String(), &request.CreateEventRequest{
		EventName: "",
		Price:     -1,
		Capacity:  10,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteEventNotFound(t *testing.T) {
	eventRepo := &MockEventRepository{}
	service := newEventService(&MockUserRepository{}, eventRepo, &MockSender{})

	id := uuid.New()
	eventRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	err := service.DeleteEvent(context.Background(), id.String())

	require.Error(t, err)
	assert.Equal(t, "Event not found", err.Error())
	eventRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteEventSuccess(t *testing.T) {
	eventRepo := &MockEventRepository{}
	service := newEventService(&MockUserRepository{}, eventRepo, &MockSender{})

	owner := testUser("organizer@example.com", entity.RoleOrganizer, true)
	event := testEvent(owner, "Tech Meetup", 100, 50)
	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	eventRepo.On("Delete", mock.Anything, event.ID).Return(nil)

	require.NoError(t, service.DeleteEvent(context.Background(), event.ID.String()))
	eventRepo.AssertExpectations(t)
}

func TestRegisterForEventNotFound(t *testing.T) {
	eventRepo := &MockEventRepository{}
	service := newEventService(&MockUserRepository{}, eventRepo, &MockSender{})

	id := uuid.New()
	eventRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, _, err := service.RegisterForEvent(context.Background(), id.String(), uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, "Event not found", err.Error())
	eventRepo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterForEventRepositoryError(t *testing.T) {
	eventRepo := &MockEventRepository{}
	service := newEventService(&MockUserRepository{}, eventRepo, &MockSender{})

	owner := testUser("organizer@example.com", entity.RoleOrganizer, true)
	event := testEvent(owner, "Tech Meetup", 100, 0)
	userID := uuid.New()

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	eventRepo.On("Register", mock.Anything, event.ID, userID).
		Return(errors.New("event is at full capacity"))

	// Transaction-level rejections surface to the caller unchanged
	_, _, err := service.RegisterForEvent(context.Background(), event.ID.String(), userID.String())

	require.Error(t, err)
	assert.Equal(t, "event is at full capacity", err.Error())
}

func TestRegisterForEventSuccess(t *testing.T) {
	userRepo := &MockUserRepository{}
	eventRepo := &MockEventRepository{}
	mailer := &MockSender{}
	service := newEventService(userRepo, eventRepo, mailer)

	owner := testUser("organizer@example.com", entity.RoleOrganizer, true)
	event := testEvent(owner, "Tech Meetup", 100, 50)
	attendee := testUser("attendee@example.com", entity.RoleUser, true)
	registered := testEvent(owner, "Tech Meetup", 110, 50)
	registered.RegisteredUsers = []uuid.UUID{attendee.ID}

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	eventRepo.On("Register", mock.Anything, event.ID, attendee.ID).Return(nil)
	userRepo.On("FindByID", mock.Anything, attendee.ID).Return(attendee, nil)
	mailer.On("Send", mock.Anything, attendee.Email, mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("FindByRegisteredUser", mock.Anything, attendee.ID).
		Return([]*entity.Event{registered}, nil)

	events, emailSent, err := service.RegisterForEvent(context.Background(), event.ID.String(), attendee.ID.String())

	require.NoError(t, err)
	assert.True(t, emailSent)
	require.Len(t, events, 1)
	assert.Equal(t, []string{attendee.ID.String()}, events[0].RegisteredUsers)
	eventRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestRegisterForEventEmailFailure(t *testing.T) {
	userRepo := &MockUserRepository{}
	eventRepo := &MockEventRepository{}
	mailer := &MockSender{}
	service := newEventService(userRepo, eventRepo, mailer)

	owner := testUser("organizer@example.com", entity.RoleOrganizer, true)
	event := testEvent(owner, "Tech Meetup", 100, 50)
	attendee := testUser("attendee@example.com", entity.RoleUser, true)

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	eventRepo.On("Register", mock.Anything, event.ID, attendee.ID).Return(nil)
	userRepo.On("FindByID", mock.Anything, attendee.ID).Return(attendee, nil)
	mailer.On("Send", mock.Anything, attendee.Email, mock.Anything, mock.Anything).
		Return(errors.New("provider unavailable"))
	eventRepo.On("FindByRegisteredUser", mock.Anything, attendee.ID).
		Return([]*entity.Event{event}, nil)

	// A failed email degrades the response but never the registration
	events, emailSent, err := service.RegisterForEvent(context.Background(), event.ID.String(), attendee.ID.String())

	require.NoError(t, err)
	assert.False(t, emailSent)
	assert.Len(t, events, 1)
}

func TestGetMyEvents(t *testing.T) {
	eventRepo := &MockEventRepository{}
	service := newEventService(&MockUserRepository{}, eventRepo, &MockSender{})

	owner := testUser("organizer@example.com", entity.RoleOrganizer, true)
	eventRepo.On("FindByOwner", mock.Anything, owner.ID).
		Return([]*entity.Event{testEvent(owner, "Mine", 10, 5)}, nil)

	events, err := service.GetMyEvents(context.Background(), owner.ID.String())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Mine", events[0].EventName)
}

func TestGetOtherEvents(t *testing.T) {
	eventRepo := &MockEventRepository{}
	service := newEventService(&MockUserRepository{}, eventRepo, &MockSender{})

	me := testUser("me@example.com", entity.RoleUser, true)
	other := testUser("other@example.com", entity.RoleOrganizer, true)
	eventRepo.On("FindByOwnerNot", mock.Anything, me.ID).
		Return([]*entity.Event{testEvent(other, "Theirs", 20, 5)}, nil)

	events, err := service.GetOtherEvents(context.Background(), me.ID.String())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Theirs", events[0].EventName)
}
