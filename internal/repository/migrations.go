package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

// applySchema bootstraps the tables on startup. Statements are idempotent
// so concurrent instances racing on the same database are harmless.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS admins (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		username text NOT NULL UNIQUE,
		password bytea NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_events (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		event_name text NOT NULL,
		event_location text NOT NULL,
		event_date text NOT NULL,
		event_time text NOT NULL,
		details text NOT NULL DEFAULT '',
		images text[] NOT NULL,
		map_url text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS gallery_events_created_at_idx
		ON gallery_events (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS contact_inquiries (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		email text NOT NULL,
		phone text NOT NULL DEFAULT '',
		event_type text NOT NULL DEFAULT '',
		message text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
}

func applySchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
