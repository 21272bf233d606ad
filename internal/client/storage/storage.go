// Package storage provides the durable key-value store backing the client
// session and the exchange-rate cache. The interface is small on purpose so
// logic on top of it can be tested with an in-memory implementation.
package storage

import "context"

// KV is a persistent string-keyed byte store.
//
// Contract: Get returns (nil, nil) when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
