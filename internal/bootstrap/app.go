package bootstrap

import (
	"context"
	"log/slog"

	"github.com/RobNel12/newbot-ai/internal/activity"
	"github.com/RobNel12/newbot-ai/internal/ai"
	"github.com/RobNel12/newbot-ai/internal/concurrency"
	"github.com/RobNel12/newbot-ai/internal/config"
	"github.com/RobNel12/newbot-ai/internal/player"
	"github.com/RobNel12/newbot-ai/internal/server"
	"github.com/RobNel12/newbot-ai/internal/shop"
	"github.com/RobNel12/newbot-ai/internal/worker"
)

// App is the assembled engine server
type App struct {
	Server      *server.Server
	PruneWorker *worker.ShopPruneWorker
	Storage     *Storage
}

// NewApp wires services over storage. Player and activity services share one
// lock manager so their per-player sections exclude each other.
func NewApp(cfg *config.Config, store *Storage) *App {
	if !cfg.AIEnabled() {
		slog.Warn(LogMsgGeneratorDisabled)
	}
	gen := ai.NewGenerator(ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AITimeout))

	locks := concurrency.NewLockManager()
	shopSvc := shop.NewService(store.Shops, gen, cfg.ShopCacheSize)
	playerSvc := player.NewService(store.Players, locks)
	activitySvc := activity.NewService(store.Players, shopSvc, gen, locks)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, cfg.ServiceName, cfg.Version, server.Services{
		Store:    store,
		Players:  playerSvc,
		Activity: activitySvc,
		Shop:     shopSvc,
		Chat:     gen,
	})

	return &App{
		Server:      srv,
		PruneWorker: worker.NewShopPruneWorker(shopSvc, cfg.ShopRetentionDays),
		Storage:     store,
	}
}

// GracefulShutdown stops accepting requests, cancels the prune timer and
// closes storage last. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDownServer)

	if err := app.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if app.PruneWorker != nil {
		if err := app.PruneWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgPruneWorkerFailed, "error", err)
		}
	}

	if app.Storage != nil {
		app.Storage.Close()
		slog.Info(LogMsgStorageClosed)
	}

	slog.Info(LogMsgServerStopped)
}
