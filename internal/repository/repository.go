package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db      *pgxpool.Pool
	Admin   AdminRepository
	Event   EventRepository
	Contact ContactRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applySchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Repository{
		db:      db,
		Admin:   NewAdminRepository(db),
		Event:   NewEventRepository(db),
		Contact: NewContactRepository(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
