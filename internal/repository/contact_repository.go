package repository

import (
	"context"
	"fmt"

	"vedika_events/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContactRepo) SaveInquiry(ctx context.Context, inquiry models.ContactInquiry) (uuid.UUID, error) {
	const op = "repository.contact_repository.SaveInquiry"

	query, args, err := r.sb.Insert("contact_inquiries").
		Columns("name", "email", "phone", "event_type", "message").
		Values(inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.EventType, inquiry.Message).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}
