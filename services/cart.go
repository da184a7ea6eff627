package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"zaykaa/models"
	"zaykaa/storage"
)

// CartLedger owns all carts, keyed by user ID. The in-memory cart is
// authoritative for the session; every mutation synchronously writes a
// snapshot to the cart store so a crash right after a mutation cannot lose
// it. A failed write is logged and the session continues on memory.
type CartLedger struct {
	mu    sync.Mutex
	carts map[string]*models.Cart

	store storage.CartStore
	gate  OrderingGate
}

func NewCartLedger(store storage.CartStore, gate OrderingGate) *CartLedger {
	if gate == nil {
		gate = AlwaysOpen{}
	}
	return &CartLedger{
		carts: make(map[string]*models.Cart),
		store: store,
		gate:  gate,
	}
}

// Get returns a snapshot of the user's cart, restoring it from storage on
// first access. A user with nothing persisted gets an empty cart.
func (l *CartLedger) Get(ctx context.Context, userID string) models.Cart {
	l.mu.Lock()
	defer l.mu.Unlock()
	return snapshotOf(l.cart(ctx, userID))
}

// Add puts quantity more of item into the cart. An existing line for the
// same item ID is incremented; otherwise a new line is appended. The ordering
// gate is consulted first: when closed, nothing changes and ErrNotEligible is
// returned.
func (l *CartLedger) Add(ctx context.Context, userID string, item models.MenuItem, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		return l.Get(ctx, userID), ErrInvalidQuantity
	}
	if !l.gate.OrderingAllowed() {
		return l.Get(ctx, userID), ErrNotEligible
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.cart(ctx, userID)
	if i := cart.Find(item.ID); i >= 0 {
		cart.Lines[i].Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, models.CartLine{MenuItem: item, Quantity: quantity})
	}
	l.persist(ctx, userID, cart)
	return snapshotOf(cart), nil
}

// SetQuantity replaces the line's quantity exactly. Zero or negative is
// equivalent to Remove. An unknown item ID is a silent no-op.
func (l *CartLedger) SetQuantity(ctx context.Context, userID, itemID string, quantity int) models.Cart {
	if quantity <= 0 {
		return l.Remove(ctx, userID, itemID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.cart(ctx, userID)
	if i := cart.Find(itemID); i >= 0 {
		cart.Lines[i].Quantity = quantity
		l.persist(ctx, userID, cart)
	}
	return snapshotOf(cart)
}

// Remove deletes the line with the matching item ID, if present.
func (l *CartLedger) Remove(ctx context.Context, userID, itemID string) models.Cart {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.cart(ctx, userID)
	if i := cart.Find(itemID); i >= 0 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		l.persist(ctx, userID, cart)
	}
	return snapshotOf(cart)
}

// Clear empties the cart and removes its persisted row entirely. An absent
// row is how an empty cart is represented, never a stored empty list.
func (l *CartLedger) Clear(ctx context.Context, userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.carts[userID] = &models.Cart{}
	if err := l.store.Delete(ctx, userID); err != nil {
		log.Printf("cart: delete persisted cart for %s: %v", userID, err)
	}
}

// cart returns the live cart for userID, loading it from storage once.
// Callers must hold l.mu.
func (l *CartLedger) cart(ctx context.Context, userID string) *models.Cart {
	if c, ok := l.carts[userID]; ok {
		return c
	}
	c := &models.Cart{}
	lines, err := l.store.Load(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("cart: restore cart for %s: %v", userID, err)
	}
	c.Lines = lines
	l.carts[userID] = c
	return c
}

func (l *CartLedger) persist(ctx context.Context, userID string, cart *models.Cart) {
	if err := l.store.Save(ctx, userID, cart.Lines); err != nil {
		log.Printf("cart: persist cart for %s: %v", userID, err)
	}
}

func snapshotOf(c *models.Cart) models.Cart {
	lines := make([]models.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return models.Cart{Lines: lines}
}
