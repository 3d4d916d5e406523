package models

// MenuItem represents a purchasable item in the restaurant catalog.
// Items are created and edited through the menu endpoints but never deleted.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsVeg       bool    `json:"isVeg"`
}

// NextMenuItemID mints an id for a new catalog item: max existing id + 1.
func NextMenuItemID(items []MenuItem) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}
