package engine

import (
	"fmt"
	"strings"
)

// ParseCategory parses user input to a Category. The empty string means "all" and
// returns ("", nil).
func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "", "all":
		return "", nil
	case "clothing", "clothes":
		return CategoryClothing, nil
	case "accessory", "accessories":
		return CategoryAccessory, nil
	case "background", "backgrounds", "bg":
		return CategoryBackground, nil
	default:
		return "", ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", input)}
	}
}
