package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RobNel12/newbot-ai/internal/database"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/repository"
)

// PlayerRepository implements repository.Player for SQLite
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// PlayerTx implements repository.PlayerTx. The database is opened with
// _txlock=immediate, so the write lock is held from BeginTx until Commit.
type PlayerTx struct {
	tx *sql.Tx
}

// BeginTx starts a new transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	return &PlayerTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *PlayerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, mapTxErr(err))
	}
	return nil
}

// Rollback rolls back the transaction
func (t *PlayerTx) Rollback(ctx context.Context) error {
	return mapTxErr(t.tx.Rollback())
}

// GetOrCreatePlayerForUpdate ensures the row exists and reads it under the write lock
func (t *PlayerTx) GetOrCreatePlayerForUpdate(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	if err := insertDefaults(ctx, t.tx, userID, guildID); err != nil {
		return nil, err
	}
	p, err := scanPlayer(t.tx.QueryRowContext(ctx, sqlSelectPlayer, userID, guildID))
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
	return r.db.PingContext(ctx)
}

// GetPlayer returns the stored player
func (r *PlayerRepository) GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	p, err := scanPlayer(r.db.QueryRowContext(ctx, sqlSelectPlayer, userID, guildID))
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
	rows, err := r.db.QueryContext(ctx, sqlListInventory, userID, guildID)
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
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlDeletePlayerInventory, userID, guildID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, sqlResetPlayer, userID, guildID,
			domain.DefaultCoins, domain.DefaultHP, domain.DefaultAtk, domain.DefaultDef, domain.DefaultLevel)
		return err
	})
	if err != nil {
		return fmt.Errorf(ErrMsgResetPlayerFailed, err)
	}
	return nil
}

// ResetGuild resets every player of the guild and returns how many rows were reset
func (r *PlayerRepository) ResetGuild(ctx context.Context, guildID string) (int64, error) {
	var affected int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlDeleteGuildInventory, guildID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, sqlResetGuildPlayers,
			domain.DefaultCoins, domain.DefaultHP, domain.DefaultAtk, domain.DefaultDef, domain.DefaultLevel, guildID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf(ErrMsgResetGuildFailed, err)
	}
	return affected, nil
}

// AverageLevel returns the mean level of the guild's players, 1 when it has none
func (r *PlayerRepository) AverageLevel(ctx context.Context, guildID string) (float64, error) {
	var avg float64
	if err := r.db.QueryRowContext(ctx, sqlAverageLevel, guildID).Scan(&avg); err != nil {
		return 0, fmt.Errorf(ErrMsgAverageLevelFailed, err)
	}
	return avg, nil
}

func insertDefaults(ctx context.Context, q querier, userID, guildID string) error {
	_, err := q.ExecContext(ctx, sqlInsertPlayerIfMissing, userID, guildID,
		domain.DefaultCoins, domain.DefaultHP, domain.DefaultAtk, domain.DefaultDef, domain.DefaultLevel)
	if err != nil {
		return fmt.Errorf(ErrMsgCreatePlayerFailed, err)
	}
	return nil
}

func updatePlayer(ctx context.Context, q querier, userID, guildID string, update domain.PlayerUpdate) error {
	query, args, ok := database.BuildPlayerUpdate(userID, guildID, update, database.QuestionPlaceholder)
	if !ok {
		return nil
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf(ErrMsgUpdatePlayerFailed, err)
	}
	if n == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func addInventory(ctx context.Context, q querier, userID, guildID, item string, qty int) error {
	if qty <= 0 {
		qty = 1
	}
	if _, err := q.ExecContext(ctx, sqlAddInventory, userID, guildID, item, qty); err != nil {
		return fmt.Errorf(ErrMsgAddInventoryFailed, err)
	}
	return nil
}
