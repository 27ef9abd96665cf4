package engine

import (
	"fmt"
	"strings"
)

// ShopItem is a cosmetic in the static catalog. Ownership lives in the inventory.
type ShopItem struct {
	ID       string
	Name     string
	Price    int
	Category Category
	ImageURL string
}

func builtinItems() []ShopItem {
	return []ShopItem{
		{ID: "hat_1", Name: "Cool Cap", Price: 50, Category: CategoryClothing, ImageURL: "https://images.unsplash.com/photo-1521369909029-2afed882baee?w=200&h=200&fit=crop"},
		{ID: "shirt_1", Name: "Casual Shirt", Price: 75, Category: CategoryClothing, ImageURL: "https://images.unsplash.com/photo-1583743814966-8936f37f4678?w=200&h=200&fit=crop"},
		{ID: "glasses_1", Name: "Stylish Glasses", Price: 40, Category: CategoryAccessory, ImageURL: "https://images.unsplash.com/photo-1574258495973-f010dfbb5371?w=200&h=200&fit=crop"},
		{ID: "watch_1", Name: "Smart Watch", Price: 120, Category: CategoryAccessory, ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=200&h=200&fit=crop"},
		{ID: "bg_1", Name: "Forest Background", Price: 100, Category: CategoryBackground, ImageURL: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=200&h=200&fit=crop"},
		{ID: "bg_2", Name: "City Background", Price: 100, Category: CategoryBackground, ImageURL: "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=200&h=200&fit=crop"},
		{ID: "hat_2", Name: "Beanie", Price: 35, Category: CategoryClothing, ImageURL: "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=200&h=200&fit=crop"},
		{ID: "accessory_1", Name: "Gold Chain", Price: 80, Category: CategoryAccessory, ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=200&h=200&fit=crop"},
	}
}

// Catalog is an immutable, ordered set of shop items.
type Catalog struct {
	items []ShopItem
	byID  map[string]int
}

// NewCatalog validates items: ids must be unique and non-empty, prices positive
// and categories known.
func NewCatalog(items []ShopItem) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(items))}
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			return nil, ValidationError{Field: "item id", Reason: "id is required"}
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, ValidationError{Field: "item id", Reason: fmt.Sprintf("duplicate id %q", it.ID)}
		}
		if it.Price <= 0 {
			return nil, ValidationError{Field: "price", Reason: fmt.Sprintf("item %q must cost at least 1 coin", it.ID)}
		}
		if !it.Category.IsValid() {
			return nil, ValidationError{Field: "category", Reason: fmt.Sprintf("item %q has unknown category %q", it.ID, it.Category)}
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinItems())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Get(id string) (ShopItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ShopItem{}, false
	}
	return c.items[i], true
}

// Items returns the items of one category, or all items when cat is empty.
func (c *Catalog) Items(cat Category) []ShopItem {
	out := make([]ShopItem, 0, len(c.items))
	for _, it := range c.items {
		if cat == "" || it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.items) }
