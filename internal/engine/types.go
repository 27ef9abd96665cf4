package engine

// Category is an equip slot. Each category holds at most one equipped item.
type Category string

const (
	CategoryClothing   Category = "clothing"
	CategoryAccessory  Category = "accessory"
	CategoryBackground Category = "background"
)

// Categories lists the equip slots in display order.
var Categories = []Category{CategoryClothing, CategoryAccessory, CategoryBackground}

func (c Category) IsValid() bool {
	switch c {
	case CategoryClothing, CategoryAccessory, CategoryBackground:
		return true
	default:
		return false
	}
}

const (
	// DefaultTaskReward is the number of coins granted for completing a task and
	// taken back when it is unchecked.
	DefaultTaskReward = 5

	// DefaultHistoryLimit is how many transactions the history view shows.
	DefaultHistoryLimit = 20
)
