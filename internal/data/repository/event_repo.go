package repository

import (
	"context"
	"fmt"

	"event-hub/internal/data/entity"
	"event-hub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error)
	FindByOwnerNot(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error)
	FindByRegisteredUser(ctx context.Context, userID uuid.UUID) ([]*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Register(ctx context.Context, eventID, userID uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func (er *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, name, price, capacity, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := er.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Price,
		event.Capacity,
		event.OwnerID,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		er.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("name", event.Name),
			zap.String("owner_id", event.OwnerID.String()),
		)
		return fmt.Errorf("create event %s: %w", event.Name, err)
	}

	return nil
}

// eventColumns is shared by every read that annotates events with owner
// identity fields and the insertion-ordered registered-user list.
const eventColumns = `
	e.id, e.name, e.price, e.capacity, e.owner_id, e.created_at, e.updated_at,
	u.email, u.phone, u.role, u.activity,
	ARRAY(SELECT er.user_id::text
	      FROM event_registrations er
	      WHERE er.event_id = e.id
	      ORDER BY er.created_at) AS registered_users
`

func (er *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.owner_id
		WHERE e.id = $1
	`

	event, err := scanEvent(er.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (er *eventRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.owner_id
		WHERE e.owner_id = $1
		ORDER BY e.created_at DESC
	`

	return er.queryEvents(ctx, query, ownerID)
}

func (er *eventRepository) FindByOwnerNot(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.owner_id
		WHERE e.owner_id <> $1
		ORDER BY e.created_at DESC
	`

	return er.queryEvents(ctx, query, ownerID)
}

// FindByRegisteredUser returns every event the user appears in, owner annotated
func (er *eventRepository) FindByRegisteredUser(ctx context.Context, userID uuid.UUID) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.owner_id
		WHERE EXISTS (SELECT 1 FROM event_registrations er
		              WHERE er.event_id = e.id AND er.user_id = $1)
		ORDER BY e.created_at DESC
	`

	return er.queryEvents(ctx, query, userID)
}

func (er *eventRepository) queryEvents(ctx context.Context, query string, arg any) ([]*entity.Event, error) {
	rows, err := er.db.Query(ctx, query, arg)
	if err != nil {
		er.log.Error("Failed to query events", zap.Error(err))
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events rows: %w", err)
	}

	return events, nil
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	var owner entity.User
	var registered []string

	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Price,
		&event.Capacity,
		&event.OwnerID,
		&event.CreatedAt,
		&event.UpdatedAt,
		&owner.Email,
		&owner.Phone,
		&owner.Role,
		&owner.Activity,
		&registered,
	)
	if err != nil {
		return nil, err
	}

	owner.ID = event.OwnerID
	event.Owner = &owner

	event.RegisteredUsers = make([]uuid.UUID, 0, len(registered))
	for _, idStr := range registered {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse registered user ID %s: %w", idStr, err)
		}
		event.RegisteredUsers = append(event.RegisteredUsers, id)
	}

	return &event, nil
}

func (er *eventRepository) Delete(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := er.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `DELETE FROM event_registrations WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event registrations: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		er.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", id.String())
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	er.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}

// Register appends the user to the event inside one transaction.
//
// The event row is locked with SELECT ... FOR UPDATE so two registrations
// racing for the last seat serialize on the row lock; the capacity and
// duplicate checks below run against a stable snapshot and the count can
// never overshoot the capacity.
func (er *eventRepository) Register(ctx context.Context, eventID, userID uuid.UUID) (err error) {
	tx, err := er.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var capacity int
	var price float64
	err = tx.QueryRow(ctx, `
		SELECT capacity, price
		FROM events
		WHERE id = $1
		FOR UPDATE`, eventID,
	).Scan(&capacity, &price)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("event %s not found", eventID.String())
	}
	if err != nil {
		return fmt.Errorf("lock event row: %w", err)
	}

	var dupCount int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM event_registrations
		WHERE event_id = $1 AND user_id = $2`, eventID, userID,
	).Scan(&dupCount)
	if err != nil {
		return fmt.Errorf("check duplicate registration: %w", err)
	}
	if dupCount > 0 {
		return fmt.Errorf("already registered for this event")
	}

	var registeredCount int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM event_registrations
		WHERE event_id = $1`, eventID,
	).Scan(&registeredCount)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if registeredCount >= capacity {
		return fmt.Errorf("event is at full capacity")
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO event_registrations (event_id, user_id, created_at)
		VALUES ($1, $2, NOW())`, eventID, userID)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	// Each successful registration raises the price by 10%, rounded up
	_, err = tx.Exec(ctx, `
		UPDATE events SET price = $2, updated_at = NOW()
		WHERE id = $1`, eventID, entity.NextPrice(price))
	if err != nil {
		return fmt.Errorf("update event price: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	er.log.Info("User registered for event",
		zap.String("event_id", eventID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}
