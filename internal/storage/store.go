package storage

import (
	"context"
	"errors"
)

// Keys of the four persisted blobs.
const (
	KeyTasks     = "daily_tasks"
	KeyLedger    = "coin_transactions"
	KeyStats     = "user_stats"
	KeyInventory = "user_inventory"
)

// ErrNotFound is returned by Store.Get when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a key-value store of JSON blobs.
//
// Set is atomic per key. SetMany writes every value or none of them on backends
// that support it (sqlite, bbolt, redis, memory all do).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Close() error
}
