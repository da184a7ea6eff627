package models

// CartLine is a menu item the user selected, with how many of it.
// Quantity is always >= 1; a line that would drop to 0 is removed instead.
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Cart keeps lines in insertion order: new items are appended, never re-sorted.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Find returns the index of the line for the given item id, or -1.
func (c *Cart) Find(itemID string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == itemID {
			return i
		}
	}
	return -1
}

// TotalQuantity is the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
