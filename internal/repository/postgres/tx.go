package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"letsbookit/internal/domain"
)

type txKey struct{}

// querier is the subset of *sql.DB and *sql.Tx the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// q returns the transaction carried by ctx, or db when there is none.
func q(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

type txManager struct {
	db *sql.DB
}

// NewTxManager returns a TxManager backed by db. Repositories created from
// the same db pick up the transaction through the context.
func NewTxManager(db *sql.DB) domain.TxManager {
	return &txManager{db: db}
}

func (m *txManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		// Already inside a transaction; join it.
		return fn(ctx)
	}
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
