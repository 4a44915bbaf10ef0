package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobNel12/newbot-ai/internal/config"
)

func TestOpenStorage_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StorageDriver: config.DriverSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "data", "rpg.sqlite3"),
	}

	store, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Ping(ctx))

	p, err := store.Players.GetOrCreatePlayer(ctx, "222", "111")
	require.NoError(t, err)
	assert.Equal(t, 120, p.Coins)

	require.NoError(t, store.Shops.PutShop(ctx, "111", "20240310", "[]"))
	raw, ok, err := store.Shops.GetShop(ctx, "111", "20240310")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), &config.Config{StorageDriver: "mongo"})
	assert.Error(t, err)
}

func TestNewApp_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Port:              0,
		APIKey:            "k",
		StorageDriver:     config.DriverSQLite,
		SQLitePath:        filepath.Join(t.TempDir(), "rpg.sqlite3"),
		ServiceName:       "newbot-ai",
		Version:           "test",
		OpenAIModel:       config.DefaultOpenAIModel,
		AITimeout:         config.DefaultAITimeout,
		ShopCacheSize:     config.DefaultShopCacheSize,
		ShopRetentionDays: config.DefaultShopRetentionDays,
	}
	store, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)

	app := NewApp(cfg, store)
	require.NotNil(t, app.Server)
	require.NotNil(t, app.PruneWorker)

	n, err := app.PruneWorker.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	GracefulShutdown(ctx, app)
}
