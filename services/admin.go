package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"zaykaa/models"

	"github.com/google/uuid"
)

// ItemInput is the payload for creating a menu item. The ID is assigned here.
type ItemInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        *float64 `json:"rating,omitempty"`
	IsVeg         bool     `json:"isVeg"`
	IsOffer       bool     `json:"isOffer"`
	IsBeverage    bool     `json:"isBeverage"`
	IsHealthFreak bool     `json:"isHealthFreak"`
}

// ItemPatch carries a partial update; nil fields are left untouched.
type ItemPatch struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *int64   `json:"price,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	IsVeg         *bool    `json:"isVeg,omitempty"`
	IsOffer       *bool    `json:"isOffer,omitempty"`
	IsBeverage    *bool    `json:"isBeverage,omitempty"`
	IsHealthFreak *bool    `json:"isHealthFreak,omitempty"`
}

// AdminEditor mutates the catalog store. Every successful mutation persists
// the full resulting catalog as the new local mirror with a fresh version
// marker; pushing the mirror to the remote source is an operator step outside
// this process.
type AdminEditor struct {
	catalog *CatalogStore

	mu      sync.Mutex
	pending map[string]string // confirmation token -> item id
}

func NewAdminEditor(catalog *CatalogStore) *AdminEditor {
	return &AdminEditor{
		catalog: catalog,
		pending: make(map[string]string),
	}
}

// AddItem appends a new item. Names must be unique case-insensitively after
// trimming whitespace; a collision returns ErrDuplicateName and leaves the
// catalog unchanged.
func (a *AdminEditor) AddItem(ctx context.Context, input ItemInput) (models.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.MenuItem{}, fmt.Errorf("name is required")
	}
	if input.Price < 0 {
		return models.MenuItem{}, fmt.Errorf("price must be >= 0")
	}

	items := a.catalog.Items()
	for _, it := range items {
		if strings.EqualFold(strings.TrimSpace(it.Name), name) {
			return models.MenuItem{}, ErrDuplicateName
		}
	}

	item := models.MenuItem{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Image:         input.Image,
		Category:      input.Category,
		Rating:        input.Rating,
		IsVeg:         input.IsVeg,
		IsOffer:       input.IsOffer,
		IsBeverage:    input.IsBeverage,
		IsHealthFreak: input.IsHealthFreak,
	}
	a.catalog.Replace(ctx, append(items, item), versionNow())
	return item, nil
}

// UpdateItem merges the patch into the matching item. An unknown id is a
// silent no-op.
func (a *AdminEditor) UpdateItem(ctx context.Context, id string, patch ItemPatch) {
	items := a.catalog.Items()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		applyPatch(&items[i], patch)
		a.catalog.Replace(ctx, items, versionNow())
		return
	}
}

// ProposeDelete starts a two-phase delete and returns a confirmation token.
// Nothing changes until the token is confirmed.
func (a *AdminEditor) ProposeDelete(itemID string) string {
	token := uuid.NewString()
	a.mu.Lock()
	a.pending[token] = itemID
	a.mu.Unlock()
	return token
}

// ConfirmDelete consumes the token and removes the item. An unknown token
// returns ErrUnknownToken; a token for an already-removed item is a no-op.
func (a *AdminEditor) ConfirmDelete(ctx context.Context, token string) error {
	a.mu.Lock()
	itemID, ok := a.pending[token]
	if ok {
		delete(a.pending, token)
	}
	a.mu.Unlock()
	if !ok {
		return ErrUnknownToken
	}

	items := a.catalog.Items()
	for i := range items {
		if items[i].ID == itemID {
			a.catalog.Replace(ctx, append(items[:i], items[i+1:]...), versionNow())
			return nil
		}
	}
	return nil
}

// DeclineDelete discards the pending token, leaving the catalog unchanged.
func (a *AdminEditor) DeclineDelete(token string) {
	a.mu.Lock()
	delete(a.pending, token)
	a.mu.Unlock()
}

// ResetToDefaults restores the built-in catalog and drops all mirrors.
func (a *AdminEditor) ResetToDefaults(ctx context.Context) {
	a.catalog.ResetToDefaults(ctx)
}

func applyPatch(item *models.MenuItem, p ItemPatch) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Rating != nil {
		item.Rating = p.Rating
	}
	if p.IsVeg != nil {
		item.IsVeg = *p.IsVeg
	}
	if p.IsOffer != nil {
		item.IsOffer = *p.IsOffer
	}
	if p.IsBeverage != nil {
		item.IsBeverage = *p.IsBeverage
	}
	if p.IsHealthFreak != nil {
		item.IsHealthFreak = *p.IsHealthFreak
	}
}

func versionNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
