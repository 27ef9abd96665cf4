package engine

import (
	"context"

	"dailyquest/internal/storage"
)

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements the user has earned.
type AchievementChecker struct {
	stats     storage.UserStats
	ledger    []storage.CoinTransaction
	inventory storage.UserInventory
	catalog   *Catalog
}

func NewAchievementChecker(stats storage.UserStats, ledger []storage.CoinTransaction, inventory storage.UserInventory, catalog *Catalog) *AchievementChecker {
	return &AchievementChecker{
		stats:     stats,
		ledger:    ledger,
		inventory: inventory,
		catalog:   catalog,
	}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Streaks
		c.streakAchievement("spark", "Spark", "Keep a 3-day streak", "🔥", 3),
		c.streakAchievement("week_warrior", "Week Warrior", "Keep a 7-day streak", "📅", 7),
		c.streakAchievement("unstoppable", "Unstoppable", "Keep a 30-day streak", "🚀", 30),

		// Task completions
		c.completionAchievement("first_task", "First Step", "Complete 1 task", "✓", 1),
		c.completionAchievement("productive", "Productive", "Complete 10 tasks", "📋", 10),
		c.completionAchievement("achiever", "Achiever", "Complete 50 tasks", "🏅", 50),
		c.completionAchievement("powerhouse", "Powerhouse", "Complete 100 tasks", "🏆", 100),

		// Coins earned over the whole ledger
		c.coinAchievement("piggy_bank", "Piggy Bank", "Earn 50 coins", "🐷", 50),
		c.coinAchievement("treasurer", "Treasurer", "Earn 250 coins", "💰", 250),
		c.coinAchievement("tycoon", "Tycoon", "Earn 1000 coins", "💎", 1000),

		// Wardrobe
		c.firstPurchaseAchievement("shopper", "Shopper", "Buy your first item", "🛍️"),
		c.outfitAchievement("dressed_up", "Dressed Up", "Equip an item in every slot", "🧥"),
		c.collectorAchievement("collector", "Collector", "Own every item in the shop", "👑"),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	earned := c.stats.LongestStreak >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) completionAchievement(id, name, desc, icon string, count int) Achievement {
	done := 0
	for _, t := range c.ledger {
		if isTaskReward(t) {
			done++
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: done >= count}
}

func (c *AchievementChecker) coinAchievement(id, name, desc, icon string, coins int) Achievement {
	earned := Earned(c.ledger) >= coins
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) firstPurchaseAchievement(id, name, desc, icon string) Achievement {
	earned := len(c.inventory.OwnedItems) > 0
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) outfitAchievement(id, name, desc, icon string) Achievement {
	earned := true
	for _, cat := range Categories {
		if c.inventory.EquippedItems[string(cat)] == "" {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) collectorAchievement(id, name, desc, icon string) Achievement {
	earned := c.catalog.Len() > 0
	for _, it := range c.catalog.Items("") {
		if !c.inventory.Owns(it.ID) {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

// Achievements evaluates every achievement against the current state.
func (s *Service) Achievements(ctx context.Context) []Achievement {
	s.begin(ctx)
	defer s.mu.Unlock()
	checker := NewAchievementChecker(s.state.stats, s.state.ledger, s.state.inventory, s.catalog)
	return checker.GetAchievements()
}
