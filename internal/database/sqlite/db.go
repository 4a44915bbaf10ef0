// Package sqlite is the single-file store used when STORAGE_DRIVER=sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/RobNel12/newbot-ai/internal/database"
)

// Open opens (creating if needed) the database file at path and applies migrations.
// Writers are serialized through a single connection and BEGIN IMMEDIATE transactions.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToOpenDatabase, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToPingDatabase, err)
	}

	if err := database.MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	slog.Default().Info(database.LogMsgSuccessfullyConnectedToDatabase, "driver", DriverName, "path", path)
	return db, nil
}

func dsn(path string) string {
	return "file:" + path + "?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
}
