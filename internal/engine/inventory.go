package engine

import (
	"context"
	"fmt"

	"dailyquest/internal/storage"
)

type PurchaseResult struct {
	Item        ShopItem
	Transaction storage.CoinTransaction
	Balance     int
}

// Purchase buys a catalog item. Nothing changes when the item is unknown,
// unaffordable or already owned. On success the debit and the inventory update
// are written in one SetMany.
func (s *Service) Purchase(ctx context.Context, itemID string) (*PurchaseResult, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	item, ok := s.catalog.Get(itemID)
	if !ok {
		return nil, NotFoundError{Kind: "item", ID: itemID}
	}
	if err := CanPurchase(s.state.stats.TotalCoins, s.state.inventory, item); err != nil {
		return nil, err
	}

	txn, err := s.deductCoins(item.Price, fmt.Sprintf("Purchased %s", item.Name), "")
	if err != nil {
		return nil, err
	}
	s.state.inventory.OwnedItems = append(s.state.inventory.OwnedItems, item.ID)
	s.log.Info("item purchased", "item", item.ID, "price", item.Price, "balance", s.state.stats.TotalCoins)

	res := &PurchaseResult{Item: item, Transaction: txn, Balance: s.state.stats.TotalCoins}
	if err := s.persist(ctx, "purchase", storage.KeyLedger, storage.KeyStats, storage.KeyInventory); err != nil {
		return nil, err
	}
	return res, nil
}

type EquipResult struct {
	Item ShopItem
	// Equipped is the slot state after the call.
	Equipped bool
	// Changed is false when the call was a no-op (item unknown or not owned).
	Changed bool
}

// Equip toggles item in its category slot: equipping it replaces the previous
// occupant, and equipping the item already in the slot empties the slot. Items
// that are unknown or not owned are ignored.
func (s *Service) Equip(ctx context.Context, itemID string) (*EquipResult, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	item, ok := s.catalog.Get(itemID)
	if !ok || !CanEquip(s.state.inventory, item) {
		return &EquipResult{Item: item}, nil
	}

	slots := s.state.inventory.EquippedItems
	if slots == nil {
		slots = map[string]string{}
		s.state.inventory.EquippedItems = slots
	}
	cat := string(item.Category)
	res := &EquipResult{Item: item, Changed: true}
	if slots[cat] == item.ID {
		delete(slots, cat)
	} else {
		slots[cat] = item.ID
		res.Equipped = true
	}

	if err := s.persist(ctx, "equip", storage.KeyInventory); err != nil {
		return nil, err
	}
	return res, nil
}

// ShopListing is a catalog item as seen by the current user.
type ShopListing struct {
	ShopItem
	Owned      bool
	Affordable bool
}

// Shop lists catalog items of cat (all when empty).
func (s *Service) Shop(ctx context.Context, cat Category) []ShopListing {
	s.begin(ctx)
	defer s.mu.Unlock()

	items := s.catalog.Items(cat)
	out := make([]ShopListing, 0, len(items))
	for _, it := range items {
		out = append(out, ShopListing{
			ShopItem:   it,
			Owned:      s.state.inventory.Owns(it.ID),
			Affordable: s.state.stats.TotalCoins >= it.Price,
		})
	}
	return out
}

type ClosetItem struct {
	ShopItem
	Equipped bool
}

// Closet lists owned items of cat (all when empty) in catalog order.
func (s *Service) Closet(ctx context.Context, cat Category) []ClosetItem {
	s.begin(ctx)
	defer s.mu.Unlock()

	var out []ClosetItem
	for _, it := range s.catalog.Items(cat) {
		if !s.state.inventory.Owns(it.ID) {
			continue
		}
		out = append(out, ClosetItem{
			ShopItem: it,
			Equipped: s.state.inventory.EquippedItems[string(it.Category)] == it.ID,
		})
	}
	return out
}

// Outfit returns the equipped item per category; empty slots are absent.
func (s *Service) Outfit(ctx context.Context) map[Category]ShopItem {
	s.begin(ctx)
	defer s.mu.Unlock()

	out := map[Category]ShopItem{}
	for cat, id := range s.state.inventory.EquippedItems {
		if it, ok := s.catalog.Get(id); ok {
			out[Category(cat)] = it
		}
	}
	return out
}

// Inventory returns a copy of the stored inventory.
func (s *Service) Inventory(ctx context.Context) storage.UserInventory {
	s.begin(ctx)
	defer s.mu.Unlock()
	return s.state.inventory.Clone()
}
