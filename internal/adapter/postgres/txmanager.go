package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxTxAttempts bounds how often RunInTx replays a callback that lost a
// deadlock or serialization conflict.
const maxTxAttempts = 3

// TxManager runs callbacks inside a PostgreSQL transaction carried in the
// context. Repositories pick it up through QuerierFromCtx, so row locks taken
// with SELECT ... FOR UPDATE hold until the outermost callback returns.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn at Read Committed, committing when it returns nil and
// rolling back otherwise, including on panic. A callback that fails with a
// deadlock or serialization failure is replayed in a fresh transaction, so
// fn must not have side effects outside the database.
//
// When ctx already carries a transaction fn joins it and the outermost
// caller decides the outcome.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	var (
		err     error
		attempt int
	)
	for attempt = 1; attempt <= maxTxAttempts; attempt++ {
		err = pgx.BeginTxFunc(ctx, m.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
			return fn(withTx(ctx, tx))
		})
		if err == nil || !IsRetryable(err) || ctx.Err() != nil {
			break
		}
	}
	if err != nil && IsRetryable(err) {
		return fmt.Errorf("transaction gave up after %d attempts: %w", min(attempt, maxTxAttempts), err)
	}
	return err
}
