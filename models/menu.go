package models

import "time"

// MenuItem is a single catalog entry. JSON tags match the remote
// menu-data.json document and the web client.
type MenuItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"` // whole currency units, no paise
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        *float64 `json:"rating,omitempty"`
	IsVeg         bool     `json:"isVeg"`
	IsOffer       bool     `json:"isOffer"`
	IsBeverage    bool     `json:"isBeverage"`
	IsHealthFreak bool     `json:"isHealthFreak"`
}

// CatalogSnapshot is the wire/mirror format: the item list plus a version
// marker and denormalized counts.
type CatalogSnapshot struct {
	LastUpdated string     `json:"lastUpdated"`
	Items       []MenuItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	Categories  []string   `json:"categories"`
	Offers      int        `json:"offers"`
	VegItems    int        `json:"vegItems"`
}

// NewCatalogSnapshot derives the counts from items.
func NewCatalogSnapshot(items []MenuItem, lastUpdated string) CatalogSnapshot {
	seen := make(map[string]struct{})
	var categories []string
	offers, veg := 0, 0
	for _, it := range items {
		if _, ok := seen[it.Category]; !ok {
			seen[it.Category] = struct{}{}
			categories = append(categories, it.Category)
		}
		if it.IsOffer {
			offers++
		}
		if it.IsVeg {
			veg++
		}
	}
	return CatalogSnapshot{
		LastUpdated: lastUpdated,
		Items:       items,
		TotalItems:  len(items),
		Categories:  categories,
		Offers:      offers,
		VegItems:    veg,
	}
}

// MenuStats is what the admin dashboard shows about the current catalog.
type MenuStats struct {
	TotalItems int        `json:"totalItems"`
	Categories []string   `json:"categories"`
	Offers     int        `json:"offers"`
	VegItems   int        `json:"vegItems"`
	LastSync   *time.Time `json:"lastSync,omitempty"`
}
