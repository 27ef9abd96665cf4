package storage

import "time"

// Task is one entry of the daily task list.
type Task struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Completed       bool       `json:"completed"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
}

// CoinTransaction is an immutable ledger entry. Amount is signed.
type CoinTransaction struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
	TaskID    string    `json:"taskId,omitempty"`
}

type UserStats struct {
	TotalCoins             int    `json:"totalCoins"`
	CurrentStreak          int    `json:"currentStreak"`
	LongestStreak          int    `json:"longestStreak"`
	TasksCompletedToday    int    `json:"tasksCompletedToday"`
	TasksCompletedThisWeek int    `json:"tasksCompletedThisWeek"`
	LastActiveDate         string `json:"lastActiveDate"` // YYYY-MM-DD
}

// UserInventory holds purchased items and the equipped item per category
// ("clothing", "accessory", "background").
type UserInventory struct {
	OwnedItems    []string          `json:"ownedItems"`
	EquippedItems map[string]string `json:"equippedItems"`
}

// Owns reports whether itemID has been purchased.
func (inv UserInventory) Owns(itemID string) bool {
	for _, id := range inv.OwnedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate engine state.
func (inv UserInventory) Clone() UserInventory {
	out := UserInventory{
		OwnedItems:    append([]string(nil), inv.OwnedItems...),
		EquippedItems: make(map[string]string, len(inv.EquippedItems)),
	}
	for k, v := range inv.EquippedItems {
		out.EquippedItems[k] = v
	}
	return out
}
