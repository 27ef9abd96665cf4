package engine

import "dailyquest/internal/storage"

// CanPurchase returns a domain error if item cannot be bought with balance.
// Affordability is checked before ownership.
func CanPurchase(balance int, inv storage.UserInventory, item ShopItem) error {
	if balance < item.Price {
		return InsufficientFundsError{ItemID: item.ID, Price: item.Price, Balance: balance}
	}
	if inv.Owns(item.ID) {
		return AlreadyOwnedError{ItemID: item.ID}
	}
	return nil
}

// CanEquip reports whether item may go into its slot.
func CanEquip(inv storage.UserInventory, item ShopItem) bool {
	return inv.Owns(item.ID)
}
