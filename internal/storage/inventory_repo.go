package storage

import (
	"context"
	"fmt"
)

type InventoryRepo struct {
	store Store
}

func NewInventoryRepo(store Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

func EmptyInventory() UserInventory {
	return UserInventory{OwnedItems: []string{}, EquippedItems: map[string]string{}}
}

// Load returns the stored inventory with duplicate owned ids removed and empty
// equip slots dropped.
func (r *InventoryRepo) Load(ctx context.Context) (UserInventory, error) {
	var inv UserInventory
	found, err := loadJSON(ctx, r.store, KeyInventory, &inv)
	if err != nil {
		return EmptyInventory(), fmt.Errorf("inventory repo: %w", err)
	}
	if !found {
		return EmptyInventory(), nil
	}

	out := EmptyInventory()
	seen := map[string]bool{}
	for _, id := range inv.OwnedItems {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out.OwnedItems = append(out.OwnedItems, id)
	}
	for cat, id := range inv.EquippedItems {
		if id != "" {
			out.EquippedItems[cat] = id
		}
	}
	return out, nil
}

func (r *InventoryRepo) Stage(b *Batch, inv UserInventory) {
	if inv.OwnedItems == nil {
		inv.OwnedItems = []string{}
	}
	if inv.EquippedItems == nil {
		inv.EquippedItems = map[string]string{}
	}
	b.Put(KeyInventory, inv)
}
