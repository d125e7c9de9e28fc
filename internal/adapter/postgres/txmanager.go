package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs callbacks in a transaction carried by the context. Store
// methods pick it up through QuerierFromCtx, so a version-checked root
// update and its child rows commit or roll back together.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// TxOption customises the transactions opened by a TxManager.
type TxOption func(*pgx.TxOptions)

// WithIsolation sets the isolation level. The default is the server default,
// Read Committed; the version check keeps writes safe at that level.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(o *pgx.TxOptions) { o.IsoLevel = level }
}

// NewTxManager creates a TxManager over pool.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

// RunInTx runs fn in a transaction that commits when fn returns nil and
// rolls back when it returns an error or panics. A call made while ctx
// already carries a transaction joins it.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := boundTx(ctx); ok {
		return fn(ctx)
	}

	return pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
		return fn(bindTx(ctx, tx))
	})
}
