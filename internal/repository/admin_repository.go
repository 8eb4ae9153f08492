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
)

type AdminRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveAdmin inserts the admin, replacing the password hash when the
// username already exists. Used only by the provisioning CLI.
func (r *AdminRepo) SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error) {
	const op = "repository.admin_repository.SaveAdmin"

	query, args, err := r.sb.Insert("admins").
		Columns("username", "password").
		Values(admin.Username, admin.PasswordHash).
		Suffix("ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password RETURNING id").
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

func (r *AdminRepo) AdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	const op = "repository.admin_repository.AdminByUsername"

	query, args, err := r.sb.Select("id", "username", "password").
		From("admins").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, query, args...).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, fmt.Errorf("%s: %w", op, storage.ErrAdminNotFound)
		}
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}
