package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// loadJSON decodes the blob stored under key into dst. It reports false when the
// key is absent.
func loadJSON(ctx context.Context, store Store, key string, dst any) (bool, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Batch collects encoded blobs for a single SetMany call.
type Batch struct {
	values map[string][]byte
	err    error
}

func NewBatch() *Batch {
	return &Batch{values: map[string][]byte{}}
}

// Put encodes v under key. The first encoding error is kept and returned by Commit.
func (b *Batch) Put(key string, v any) {
	if b.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("encode %s: %w", key, err)
		return
	}
	b.values[key] = data
}

func (b *Batch) Keys() []string {
	return sortedKeys(b.values)
}

func (b *Batch) Commit(ctx context.Context, store Store) error {
	if b.err != nil {
		return b.err
	}
	if len(b.values) == 0 {
		return nil
	}
	return store.SetMany(ctx, b.values)
}
