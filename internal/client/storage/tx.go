package storage

import (
	"context"
	"database/sql"

	"github.com/adilbek-m/saudalink/internal/dbx"
)

// TxRunner executes fn against a view of the store such that all writes made
// by fn land together or not at all.
type TxRunner func(ctx context.Context, fn func(ctx context.Context, kv KV) error) error

// SQLiteTxRunner returns a TxRunner that wraps fn in a database transaction.
func SQLiteTxRunner(db *sql.DB) TxRunner {
	return func(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return fn(ctx, NewSQLiteKV(tx))
		})
	}
}

// PlainTxRunner returns a TxRunner that runs fn directly against kv. Used for
// stores that have no transaction support (e.g. MemoryKV).
func PlainTxRunner(kv KV) TxRunner {
	return func(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
		return fn(ctx, kv)
	}
}
