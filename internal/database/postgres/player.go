package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RobNel12/newbot-ai/internal/database"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/repository"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// PlayerTx implements repository.PlayerTx
type PlayerTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	return &PlayerTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *PlayerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, mapTxErr(err))
	}
	return nil
}

// Rollback rolls back the transaction
func (t *PlayerTx) Rollback(ctx context.Context) error {
	return mapTxErr(t.tx.Rollback(ctx))
}

// GetOrCreatePlayerForUpdate ensures the row exists and locks it for the rest of the transaction
func (t *PlayerTx) GetOrCreatePlayerForUpdate(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	if err := insertDefaults(ctx, t.tx, userID, guildID); err != nil {
		return nil, err
	}
	p, err := scanPlayer(t.tx.QueryRow(ctx, sqlSelectPlayerForUpdate, userID, guildID))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	return p, nil
}

// UpdatePlayer applies a partial update inside the transaction
func (t *PlayerTx) UpdatePlayer(ctx context.Context, userID, guildID string, update domain.PlayerUpdate) error {
	return updatePlayer(ctx, t.tx, userID, guildID, update)
}

// AddInventory increments an inventory row inside the transaction
func (t *PlayerTx) AddInventory(ctx context.Context, userID, guildID, item string, qty int) error {
	return addInventory(ctx, t.tx, userID, guildID, item, qty)
}

// Ping checks database connectivity
func (r *PlayerRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// GetPlayer returns the stored player
func (r *PlayerRepository) GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	p, err := scanPlayer(r.db.QueryRow(ctx, sqlSelectPlayer, userID, guildID))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	return p, nil
}

// GetOrCreatePlayer returns the stored player, inserting defaults first if needed
func (r *PlayerRepository) GetOrCreatePlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	if err := insertDefaults(ctx, r.db, userID, guildID); err != nil {
		return nil, err
	}
	return r.GetPlayer(ctx, userID, guildID)
}

// UpdatePlayer applies a partial update
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, userID, guildID string, update domain.PlayerUpdate) error {
	return updatePlayer(ctx, r.db, userID, guildID, update)
}

// AddInventory increments or creates an inventory row
func (r *PlayerRepository) AddInventory(ctx context.Context, userID, guildID, item string, qty int) error {
	return addInventory(ctx, r.db, userID, guildID, item, qty)
}

// ListInventory returns the player's items sorted by name
func (r *PlayerRepository) ListInventory(ctx context.Context, userID, guildID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx, sqlListInventory, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.Item, &e.Qty); err != nil {
			return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	return entries, nil
}

// ResetPlayer purges the inventory and restores the starting values in one transaction
func (r *PlayerRepository) ResetPlayer(ctx context.Context, userID, guildID string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sqlDeletePlayerInventory, userID, guildID); err != nil {
			return fmt.Errorf(ErrMsgResetPlayerFailed, err)
		}
		if _, err := tx.Exec(ctx, sqlResetPlayer, userID, guildID,
			domain.DefaultCoins, domain.DefaultHP, domain.DefaultAtk, domain.DefaultDef, domain.DefaultLevel); err != nil {
			return fmt.Errorf(ErrMsgResetPlayerFailed, err)
		}
		return nil
	})
}

// ResetGuild resets every player of the guild and returns how many rows were reset
func (r *PlayerRepository) ResetGuild(ctx context.Context, guildID string) (int64, error) {
	var affected int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sqlDeleteGuildInventory, guildID); err != nil {
			return fmt.Errorf(ErrMsgResetGuildFailed, err)
		}
		tag, err := tx.Exec(ctx, sqlResetGuildPlayers, guildID,
			domain.DefaultCoins, domain.DefaultHP, domain.DefaultAtk, domain.DefaultDef, domain.DefaultLevel)
		if err != nil {
			return fmt.Errorf(ErrMsgResetGuildFailed, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	return affected, err
}

// AverageLevel returns the mean level of the guild's players, 1 when it has none
func (r *PlayerRepository) AverageLevel(ctx context.Context, guildID string) (float64, error) {
	var avg float64
	if err := r.db.QueryRow(ctx, sqlAverageLevel, guildID).Scan(&avg); err != nil {
		return 0, fmt.Errorf(ErrMsgAverageLevelFailed, err)
	}
	return avg, nil
}

func insertDefaults(ctx context.Context, q querier, userID, guildID string) error {
	_, err := q.Exec(ctx, sqlInsertPlayerIfMissing, userID, guildID,
		domain.DefaultCoins, domain.DefaultHP, domain.DefaultAtk, domain.DefaultDef, domain.DefaultLevel)
	if err != nil {
		return fmt.Errorf(ErrMsgCreatePlayerFailed, err)
	}
	return nil
}

func updatePlayer(ctx context.Context, q querier, userID, guildID string, update domain.PlayerUpdate) error {
	query, args, ok := database.BuildPlayerUpdate(userID, guildID, update, database.DollarPlaceholder)
	if !ok {
		return nil
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func addInventory(ctx context.Context, q querier, userID, guildID, item string, qty int) error {
	if qty <= 0 {
		qty = 1
	}
	if _, err := q.Exec(ctx, sqlAddInventory, userID, guildID, item, qty); err != nil {
		return fmt.Errorf(ErrMsgAddInventoryFailed, err)
	}
	return nil
}
