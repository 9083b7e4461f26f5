// Package database opens the SQLite store and keeps its schema current.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"

	_ "modernc.org/sqlite"
)

// NewClient opens the SQLite database at cfg.Path, applies the connection
// pool settings, verifies connectivity and runs the schema migration.
func NewClient(cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// modernc sqlite serializes writes; a small pool avoids lock contention.
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("database connected", "path", cfg.Path)
	return db, nil
}

// Migrate creates the schema if it does not exist. Statements are idempotent
// so repeated startups are safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		session_id     TEXT PRIMARY KEY,
		recipient_name TEXT NOT NULL DEFAULT '',
		anchor         TEXT NOT NULL DEFAULT '',
		occasion       TEXT NOT NULL DEFAULT '',
		tone           TEXT NOT NULL DEFAULT '',
		stage          TEXT NOT NULL DEFAULT 'intention',
		prompts        TEXT NOT NULL DEFAULT '[]',
		ingredients    TEXT NOT NULL DEFAULT '[]',
		descriptors    TEXT NOT NULL DEFAULT '[]',
		final_message  TEXT NOT NULL DEFAULT '',
		created_at     DATETIME NOT NULL,
		updated_at     DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS credit_accounts (
		user_id    TEXT PRIMARY KEY,
		credits    INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection.
func Close(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
		return
	}
	logger.Info("database connection closed")
}
