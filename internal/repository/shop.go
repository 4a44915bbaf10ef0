package repository

import "context"

// ShopCache defines the interface for the per-guild daily shop cache
type ShopCache interface {
	// GetShop returns the cached items JSON and whether an entry exists
	GetShop(ctx context.Context, guildID, dayKey string) (string, bool, error)
	// PutShop inserts or replaces the entry for (guildID, dayKey)
	PutShop(ctx context.Context, guildID, dayKey, itemsJSON string) error
	// PruneShops deletes entries whose day key sorts before beforeDayKey
	PruneShops(ctx context.Context, beforeDayKey string) (int64, error)
}
