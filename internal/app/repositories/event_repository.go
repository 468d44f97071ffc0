package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

var eventColumns = []string{
	"id", "title", "description", "event_date", "event_time", "location",
	"category", "organizer", "max_attendees", "is_active", "is_past", "image", "media",
	"created_at", "updated_at",
}

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location,
		&e.Category, &e.Organizer, &e.MaxAttendees, &e.IsActive, &e.IsPast, &e.Image, &e.Media,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// CreateEvent inserts a new event and returns its ID
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "event_date", "event_time", "location",
			"category", "organizer", "max_attendees", "is_active", "is_past", "image", "media").
		Values(event.Title, event.Description, event.Date, event.Time, event.Location,
			event.Category, event.Organizer, event.MaxAttendees, event.IsActive, event.IsPast, event.Image, event.Media).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// GetEventByID retrieves an event by ID
func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get event by ID SQL")
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// GetEvents retrieves events, optionally restricted to active ones, most recent first
func (r *EventRepository) GetEvents(ctx context.Context, activeOnly bool) ([]*models.Event, error) {
	builder := r.sb.Select(eventColumns...).
		From("events").
		OrderBy("event_date DESC", "id DESC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get events SQL")
		return nil, fmt.Errorf("failed to build get events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning event row")
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating event rows")
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// UpdateEvent persists all mutable fields of an event
func (r *EventRepository) UpdateEvent(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		SetMap(map[string]interface{}{
			"title":         event.Title,
			"description":   event.Description,
			"event_date":    event.Date,
			"event_time":    event.Time,
			"location":      event.Location,
			"category":      event.Category,
			"organizer":     event.Organizer,
			"max_attendees": event.MaxAttendees,
			"is_active":     event.IsActive,
			"is_past":       event.IsPast,
			"image":         event.Image,
			"media":         event.Media,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update event SQL")
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// AppendMedia atomically appends file paths to an event's media list
func (r *EventRepository) AppendMedia(ctx context.Context, id int64, paths []string) error {
	const sql = `
		UPDATE events SET media = media || $1, updated_at = NOW()
		WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, sql, paths, id)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error appending event media")
		return fmt.Errorf("error appending event media: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes an event by ID
func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete event SQL")
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// CountEventsSince counts events dated on or after the given time
func (r *EventRepository) CountEventsSince(ctx context.Context, since time.Time) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("events").
		Where(squirrel.GtOrEq{"event_date": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count events query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting events")
		return 0, fmt.Errorf("error counting events: %w", err)
	}

	return count, nil
}
