package trm

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction started by Manager.Do, if any.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewManager returns a manager that opens transactions with the given
// isolation level. sql.LevelDefault leaves the choice to the driver.
func NewManager(db *sqlx.DB, isolation sql.IsolationLevel) Manager {
	return &txManager{
		db:   db,
		opts: &sql.TxOptions{Isolation: isolation},
	}
}

// Do runs callback in a transaction. A callback already running inside a
// transaction joins it instead of opening a new one.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return err
	}

	if err := callback(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
