package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/RobNel12/newbot-ai/internal/database/migrations"
)

// MigratePostgres applies the embedded Postgres migrations through the pool
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := migrations.Up(ctx, db, migrations.DirPostgres); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}

// MigrateSQLite applies the embedded SQLite migrations
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	if err := migrations.Up(ctx, db, migrations.DirSQLite); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}
