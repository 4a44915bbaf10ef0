package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShopCacheRepository implements repository.ShopCache for PostgreSQL
type ShopCacheRepository struct {
	db *pgxpool.Pool
}

// NewShopCacheRepository creates a new ShopCacheRepository
func NewShopCacheRepository(db *pgxpool.Pool) *ShopCacheRepository {
	return &ShopCacheRepository{db: db}
}

// GetShop returns the cached items JSON for the guild and day
func (r *ShopCacheRepository) GetShop(ctx context.Context, guildID, dayKey string) (string, bool, error) {
	var itemsJSON string
	err := r.db.QueryRow(ctx, sqlSelectShop, guildID, dayKey).Scan(&itemsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(ErrMsgGetShopFailed, err)
	}
	return itemsJSON, true, nil
}

// PutShop inserts or replaces the day's entry
func (r *ShopCacheRepository) PutShop(ctx context.Context, guildID, dayKey, itemsJSON string) error {
	if _, err := r.db.Exec(ctx, sqlUpsertShop, guildID, dayKey, itemsJSON); err != nil {
		return fmt.Errorf(ErrMsgPutShopFailed, err)
	}
	return nil
}

// PruneShops deletes entries older than beforeDayKey
func (r *ShopCacheRepository) PruneShops(ctx context.Context, beforeDayKey string) (int64, error) {
	tag, err := r.db.Exec(ctx, sqlPruneShops, beforeDayKey)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgPruneShopsFailed, err)
	}
	return tag.RowsAffected(), nil
}
