package storage

import (
	"context"
	"fmt"
)

// LedgerRepo stores the append-only coin transaction list.
type LedgerRepo struct {
	store Store
}

func NewLedgerRepo(store Store) *LedgerRepo {
	return &LedgerRepo{store: store}
}

func (r *LedgerRepo) Load(ctx context.Context) ([]CoinTransaction, error) {
	var txns []CoinTransaction
	if _, err := loadJSON(ctx, r.store, KeyLedger, &txns); err != nil {
		return []CoinTransaction{}, fmt.Errorf("ledger repo: %w", err)
	}
	if txns == nil {
		txns = []CoinTransaction{}
	}
	return txns, nil
}

func (r *LedgerRepo) Stage(b *Batch, txns []CoinTransaction) {
	if txns == nil {
		txns = []CoinTransaction{}
	}
	b.Put(KeyLedger, txns)
}
