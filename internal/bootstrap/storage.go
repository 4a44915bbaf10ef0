package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RobNel12/newbot-ai/internal/config"
	"github.com/RobNel12/newbot-ai/internal/database"
	"github.com/RobNel12/newbot-ai/internal/database/postgres"
	"github.com/RobNel12/newbot-ai/internal/database/sqlite"
	"github.com/RobNel12/newbot-ai/internal/repository"
)

// Storage holds the repository implementations of the configured driver
type Storage struct {
	Players repository.Player
	Shops   repository.ShopCache
	close   func()
}

// Ping checks the underlying database
func (s *Storage) Ping(ctx context.Context) error {
	return s.Players.Ping(ctx)
}

// Close releases the connection pool or file handle
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects to the configured driver and applies its migrations
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver, "path", cfg.SQLitePath)
		return &Storage{
			Players: sqlite.NewPlayerRepository(db),
			Shops:   sqlite.NewShopCacheRepository(db),
			close:   func() { _ = db.Close() },
		}, nil

	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, PoolMaxConnIdleTime, PoolMaxConnLifetime)
		if err != nil {
			return nil, err
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info(LogMsgMigrationsApplied, "driver", cfg.StorageDriver)
		slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return &Storage{
			Players: postgres.NewPlayerRepository(pool),
			Shops:   postgres.NewShopCacheRepository(pool),
			close:   pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}
