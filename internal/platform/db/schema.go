package db

import (
	"context"
	"fmt"
	"log/slog"
)

const querySchemaNotes = `
CREATE TABLE IF NOT EXISTS notes (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    content TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)
`

// BootstrapSchema creates the notes table when it does not exist yet.
// Existing tables and rows are left untouched.
func BootstrapSchema(ctx context.Context, exec Executor) error {
	slog.Info("Initializing database schema...")

	if _, err := exec.Execute(ctx, querySchemaNotes); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}

	slog.Info("Database schema initialized.")
	return nil
}
