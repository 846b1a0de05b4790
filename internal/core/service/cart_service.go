package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

// CartStore holds the per-browser cart: selected product lines, unique per
// product ID. Every mutation is an immutable update over the line slice
// followed by a full persist through the storage port.
type CartStore struct {
	storage ports.KeyValueStore
	log     zerolog.Logger

	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartStore(storage ports.KeyValueStore, log zerolog.Logger) *CartStore {
	return &CartStore{storage: storage, log: log}
}

// Restore loads the persisted cart. Unreadable records are dropped and the
// cart starts empty.
func (c *CartStore) Restore(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.storage.Load(ctx, ports.KeyCart)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			c.log.Warn().Err(err).Msg("failed to read persisted cart")
		}
		return
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("persisted cart unreadable, clearing")
		_ = c.storage.Clear(ctx, ports.KeyCart)
		return
	}
	c.items = items
}

// Add increments an existing line for the product or appends a new one.
// A non-positive qty adds a single unit.
func (c *CartStore) Add(ctx context.Context, product domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]domain.CartItem, 0, len(c.items)+1)
	found := false
	for _, item := range c.items {
		if item.Product.ID == product.ID {
			item.Quantity += qty
			found = true
		}
		next = append(next, item)
	}
	if !found {
		next = append(next, domain.CartItem{Product: product, Quantity: qty})
	}
	c.items = next
	c.persist(ctx)
}

// Decrement lowers a line's quantity by one, removing the line when it would
// drop to zero. Unknown product IDs are ignored.
func (c *CartStore) Decrement(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]domain.CartItem, 0, len(c.items))
	for _, item := range c.items {
		if item.Product.ID == productID {
			if item.Quantity <= 1 {
				continue
			}
			item.Quantity--
		}
		next = append(next, item)
	}
	c.items = next
	c.persist(ctx)
}

// Remove drops the line unconditionally.
func (c *CartStore) Remove(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]domain.CartItem, 0, len(c.items))
	for _, item := range c.items {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	c.items = next
	c.persist(ctx)
}

// SetQuantity sets a line's quantity, clamped to a non-negative integer.
// Zero removes the line.
func (c *CartStore) SetQuantity(ctx context.Context, productID string, qty int) {
	if qty < 0 {
		qty = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]domain.CartItem, 0, len(c.items))
	for _, item := range c.items {
		if item.Product.ID == productID {
			if qty == 0 {
				continue
			}
			item.Quantity = qty
		}
		next = append(next, item)
	}
	c.items = next
	c.persist(ctx)
}

// Clear empties the cart.
func (c *CartStore) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist(ctx)
}

// Items returns a copy of the current lines.
func (c *CartStore) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartItem(nil), c.items...)
}

// Count returns the total unit count across all lines.
func (c *CartStore) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// TotalAmount returns the cart's price total.
func (c *CartStore) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// WatchSession force-clears the cart exactly once per
// authenticated→unauthenticated edge. Login and tenant switches leave the
// cart untouched.
func (c *CartStore) WatchSession(session *SessionStore) {
	session.Subscribe(func(ch SessionChange) {
		if ch.Prev != nil && ch.Cur == nil {
			c.Clear(context.Background())
		}
	})
}

// persist writes the full line list. Callers hold c.mu.
func (c *CartStore) persist(ctx context.Context) {
	if len(c.items) == 0 {
		if err := c.storage.Clear(ctx, ports.KeyCart); err != nil {
			c.log.Error().Err(err).Msg("failed to clear persisted cart")
		}
		return
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to encode cart")
		return
	}
	if err := c.storage.Save(ctx, ports.KeyCart, raw); err != nil {
		c.log.Error().Err(err).Msg("failed to persist cart")
	}
}

// MinDeliveryDate computes the earliest selectable delivery date for the
// current cart: today plus the max over lines of leadTime+1 days, where a
// line with no declared lead time contributes one day. An empty cart
// defaults to tomorrow.
func (c *CartStore) MinDeliveryDate(today time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return minDeliveryDate(c.items, today)
}

func minDeliveryDate(items []domain.CartItem, today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	offset := 1
	for _, item := range items {
		days := 1
		if lt := item.Product.LeadTimeDays; lt != nil && *lt > 0 {
			days = *lt + 1
		}
		if days > offset {
			offset = days
		}
	}
	return day.AddDate(0, 0, offset)
}

// ValidateDeliveryDate checks a previously chosen date against the minimum
// recomputed for the current cart. A date before the minimum (e.g. after a
// cart edit) returns domain.ErrDeliveryTooSoon and the user must re-pick.
func (c *CartStore) ValidateDeliveryDate(chosen, today time.Time) error {
	min := c.MinDeliveryDate(today)
	if chosen.Before(min) {
		return domain.ErrDeliveryTooSoon
	}
	return nil
}
