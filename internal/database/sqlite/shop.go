package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ShopCacheRepository implements repository.ShopCache for SQLite
type ShopCacheRepository struct {
	db *sql.DB
}

// NewShopCacheRepository creates a new ShopCacheRepository
func NewShopCacheRepository(db *sql.DB) *ShopCacheRepository {
	return &ShopCacheRepository{db: db}
}

// GetShop returns the cached items JSON for the guild and day
func (r *ShopCacheRepository) GetShop(ctx context.Context, guildID, dayKey string) (string, bool, error) {
	var itemsJSON string
	err := r.db.QueryRowContext(ctx, sqlSelectShop, guildID, dayKey).Scan(&itemsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(ErrMsgGetShopFailed, err)
	}
	return itemsJSON, true, nil
}

// PutShop inserts or replaces the day's entry
func (r *ShopCacheRepository) PutShop(ctx context.Context, guildID, dayKey, itemsJSON string) error {
	if _, err := r.db.ExecContext(ctx, sqlUpsertShop, guildID, dayKey, itemsJSON); err != nil {
		return fmt.Errorf(ErrMsgPutShopFailed, err)
	}
	return nil
}

// PruneShops deletes entries older than beforeDayKey
func (r *ShopCacheRepository) PruneShops(ctx context.Context, beforeDayKey string) (int64, error) {
	res, err := r.db.ExecContext(ctx, sqlPruneShops, beforeDayKey)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgPruneShopsFailed, err)
	}
	return res.RowsAffected()
}
