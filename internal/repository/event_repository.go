package repository

import (
	"context"
	"errors"
	"fmt"

	"vedika_events/internal/domain/models"
	"vedika_events/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

type EventRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewEventRepository(db *pgxpool.Pool) *EventRepo {
	return &EventRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveEvent inserts the event and returns it with the generated id and
// created_at filled in.
func (r *EventRepo) SaveEvent(ctx context.Context, event models.GalleryEvent) (models.GalleryEvent, error) {
	const op = "repository.event_repository.SaveEvent"

	query, args, err := r.sb.Insert("gallery_events").
		Columns(
			"event_name",
			"event_location",
			"event_date",
			"event_time",
			"details",
			"images",
			"map_url",
		).
		Values(
			event.EventName,
			event.EventLocation,
			event.EventDate,
			event.EventTime,
			event.Details,
			pq.Array(event.Images),
			event.MapURL,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.GalleryEvent{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return models.GalleryEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// Events returns every gallery event, most recent first.
func (r *EventRepo) Events(ctx context.Context) ([]models.GalleryEvent, error) {
	const op = "repository.event_repository.Events"

	query, args, err := r.selectEvents().
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []models.GalleryEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (r *EventRepo) EventByID(ctx context.Context, id uuid.UUID) (models.GalleryEvent, error) {
	const op = "repository.event_repository.EventByID"

	query, args, err := r.selectEvents().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.GalleryEvent{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.GalleryEvent{}, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return models.GalleryEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// DeleteEvent removes the row if present. Deleting an already-deleted event
// is not an error; concurrent deletes of the same id must both succeed.
func (r *EventRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	const op = "repository.event_repository.DeleteEvent"

	query, args, err := r.sb.Delete("gallery_events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *EventRepo) selectEvents() sq.SelectBuilder {
	return r.sb.Select(
		"id",
		"event_name",
		"event_location",
		"event_date",
		"event_time",
		"details",
		"images",
		"map_url",
		"created_at",
	).From("gallery_events")
}

func scanEvent(row pgx.Row) (models.GalleryEvent, error) {
	var event models.GalleryEvent

	err := row.Scan(
		&event.ID,
		&event.EventName,
		&event.EventLocation,
		&event.EventDate,
		&event.EventTime,
		&event.Details,
		&event.Images,
		&event.MapURL,
		&event.CreatedAt,
	)
	if err != nil {
		return models.GalleryEvent{}, err
	}

	return event, nil
}
