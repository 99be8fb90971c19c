package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS post (
		id          SERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		body        TEXT NOT NULL,
		tags        TEXT[] NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// tables created before tags were persisted
	`ALTER TABLE post ADD COLUMN IF NOT EXISTS tags TEXT[] NOT NULL DEFAULT '{}'`,
	`CREATE INDEX IF NOT EXISTS post_created_at_idx ON post (created_at DESC, id DESC)`,
}

// EnsureSchema creates the post table and its index if they are missing.
func EnsureSchema(ctx context.Context, db DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
