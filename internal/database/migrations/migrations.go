// Package migrations holds the embedded schema for every supported store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Dialect directories inside the embedded FS
const (
	DirPostgres = "postgres"
	DirSQLite   = "sqlite"
)

// Up applies every pending migration for the dialect directory dir
func Up(ctx context.Context, db *sql.DB, dir string) error {
	dialect, err := dialectFor(dir)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedded, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations dir %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		slog.Default().Info("Applied migration", "dialect", dir, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

func dialectFor(dir string) (goose.Dialect, error) {
	switch dir {
	case DirPostgres:
		return goose.DialectPostgres, nil
	case DirSQLite:
		return goose.DialectSQLite3, nil
	}
	return "", fmt.Errorf("unsupported migration dialect %q", dir)
}
