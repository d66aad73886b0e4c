package usecase

import (
	"context"
	"time"

	"event-hub/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByRoleNot(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	args := m.Called(ctx, role)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if event := args.Get(0); event != nil {
		return event.(*entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error) {
	args := m.Called(ctx, ownerID)
	if events := args.Get(0); events != nil {
		return events.([]*entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) FindByOwnerNot(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error) {
	args := m.Called(ctx, ownerID)
	if events := args.Get(0); events != nil {
		return events.([]*entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) FindByRegisteredUser(ctx context.Context, userID uuid.UUID) ([]*entity.Event, error) {
	args := m.Called(ctx, userID)
	if events := args.Get(0); events != nil {
		return events.([]*entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) Register(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func (m *MockSender) SendAsync(to, subject, body string) {
	m.Called(to, subject, body)
}

func testUser(email string, role entity.UserRole, active bool) *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: "$2a$10$fakehash",
		Phone:        "0812345678",
		Role:         role,
		Activity:     active,
	}
}

func testEvent(owner *entity.User, name string, price float64, capacity int) *entity.Event {
	now := time.Now()
	return &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            name,
		Price:           price,
		Capacity:        capacity,
		OwnerID:         owner.ID,
		Owner:           owner,
		RegisteredUsers: []uuid.UUID{},
	}
}
