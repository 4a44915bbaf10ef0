package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func mapTxErr(err error) error {
	if errors.Is(err, sql.ErrTxDone) {
		return domain.ErrTxClosed
	}
	return err
}

func scanPlayer(row *sql.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.UserID, &p.GuildID,
		&p.Coins, &p.HP, &p.Atk, &p.Def, &p.Level, &p.XP,
		&p.LastMine, &p.LastTrain, &p.LastAdventure, &p.LastGamble,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// withTx runs fn inside a transaction, committing on success
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
