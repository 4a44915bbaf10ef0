package repository

import (
	"context"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// Player defines the interface for player, inventory and reset persistence
type Player interface {
	// GetPlayer returns domain.ErrPlayerNotFound when no row exists
	GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error)
	GetOrCreatePlayer(ctx context.Context, userID, guildID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, userID, guildID string, update domain.PlayerUpdate) error
	AddInventory(ctx context.Context, userID, guildID, item string, qty int) error
	ListInventory(ctx context.Context, userID, guildID string) ([]domain.InventoryEntry, error)
	ResetPlayer(ctx context.Context, userID, guildID string) error
	ResetGuild(ctx context.Context, guildID string) (int64, error)
	AverageLevel(ctx context.Context, guildID string) (float64, error)
	BeginTx(ctx context.Context) (PlayerTx, error)
	Ping(ctx context.Context) error
}

// PlayerTx defines the interface for player transactions.
// GetOrCreatePlayerForUpdate holds the player's row lock until Commit or Rollback.
type PlayerTx interface {
	Tx
	GetOrCreatePlayerForUpdate(ctx context.Context, userID, guildID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, userID, guildID string, update domain.PlayerUpdate) error
	AddInventory(ctx context.Context, userID, guildID, item string, qty int) error
}
