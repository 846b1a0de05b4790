package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

func leadTime(days int) *int { return &days }

func croissant() domain.Product {
	return domain.Product{ID: "p-croissant", Name: "Croissant", Price: 2.5, Available: true}
}

func weddingCake() domain.Product {
	return domain.Product{ID: "p-cake", Name: "Wedding Cake", Price: 120, LeadTimeDays: leadTime(3), Available: true}
}

func newTestCart() (*CartStore, *stubStorage) {
	storage := newStubStorage()
	return NewCartStore(storage, discardLogger), storage
}

func TestCart_AddSameProductMergesLines(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()

	cart.Add(ctx, croissant(), 1)
	cart.Add(ctx, croissant(), 1)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
}

func TestCart_AddDistinctProductsKeepSeparateLines(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()

	cart.Add(ctx, croissant(), 2)
	cart.Add(ctx, weddingCake(), 1)

	require.Len(t, cart.Items(), 2)
	assert.InDelta(t, 2*2.5+120, cart.TotalAmount(), 1e-9)
}

func TestCart_DecrementRemovesLineAtOne(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()

	cart.Add(ctx, croissant(), 1)
	cart.Decrement(ctx, "p-croissant")

	assert.Empty(t, cart.Items())
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()

	cart.Add(ctx, croissant(), 3)
	cart.SetQuantity(ctx, "p-croissant", 0)
	assert.Empty(t, cart.Items())

	cart.Add(ctx, croissant(), 1)
	cart.SetQuantity(ctx, "p-croissant", -5)
	assert.Empty(t, cart.Items(), "negative quantity clamps to 0 and removes")
}

func TestCart_RemoveDropsLineUnconditionally(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()

	cart.Add(ctx, croissant(), 4)
	cart.Remove(ctx, "p-croissant")
	assert.Empty(t, cart.Items())
}

func TestCart_SurvivesReloadThroughStorage(t *testing.T) {
	storage := newStubStorage()
	ctx := context.Background()

	first := NewCartStore(storage, discardLogger)
	first.Add(ctx, croissant(), 2)
	first.Add(ctx, weddingCake(), 1)

	// A fresh store over the same storage simulates a page reload.
	second := NewCartStore(storage, discardLogger)
	second.Restore(ctx)

	require.Len(t, second.Items(), 2)
	assert.Equal(t, 3, second.Count())
}

func TestCart_ClearedExactlyOncePerLogoutEdge(t *testing.T) {
	storage := newStubStorage()
	ctx := context.Background()

	session := NewSessionStore(storage, &stubAccounts{}, &recordingNav{}, discardLogger)
	cart := NewCartStore(storage, discardLogger)
	cart.WatchSession(session)

	clears := 0
	session.Subscribe(func(ch SessionChange) {
		if ch.Prev != nil && ch.Cur == nil {
			clears++
		}
	})

	cart.Add(ctx, croissant(), 2)
	require.NotEmpty(t, cart.Items())

	// Login must not clear the cart.
	_ = session.Login(ctx, customer("ana"))
	assert.NotEmpty(t, cart.Items(), "login must not clear the cart")

	session.Logout(ctx)
	assert.Empty(t, cart.Items(), "logout must clear the cart")
	assert.Equal(t, 1, clears)

	// A second logout with no authenticated user is not a transition.
	session.Logout(ctx)
	assert.Equal(t, 1, clears, "no second edge, no second clear")
}

// ---------------------------------------------------------------------------
// Delivery date computation
// ---------------------------------------------------------------------------

func TestCart_MinDeliveryDate_EmptyCartIsTomorrow(t *testing.T) {
	cart, _ := newTestCart()
	today := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)

	got := cart.MinDeliveryDate(today)
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v", got)
}

func TestCart_MinDeliveryDate_LeadTimePlusOne(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()
	cart.Add(ctx, weddingCake(), 1) // lead time 3

	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	got := cart.MinDeliveryDate(today)
	want := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC) // today+4
	assert.True(t, got.Equal(want), "got %v", got)
}

func TestCart_MinDeliveryDate_MaxAcrossLinesWins(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()

	quick := croissant() // no lead time → contributes 1 day
	slow := domain.Product{ID: "p-slow", Name: "Croquembouche", Price: 80, LeadTimeDays: leadTime(5)}
	cart.Add(ctx, quick, 1)
	cart.Add(ctx, slow, 1)

	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	got := cart.MinDeliveryDate(today)
	want := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC) // today+6
	assert.True(t, got.Equal(want), "got %v", got)
}

func TestCart_ValidateDeliveryDate_InvalidatedAfterCartEdit(t *testing.T) {
	cart, _ := newTestCart()
	ctx := context.Background()
	today := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

	cart.Add(ctx, croissant(), 1)
	chosen := cart.MinDeliveryDate(today) // tomorrow
	require.NoError(t, cart.ValidateDeliveryDate(chosen, today))

	// Adding a slow item pushes the minimum past the chosen date.
	cart.Add(ctx, weddingCake(), 1)
	err := cart.ValidateDeliveryDate(chosen, today)
	assert.ErrorIs(t, err, domain.ErrDeliveryTooSoon)
}

func TestCart_RestoreDropsUnreadableRecord(t *testing.T) {
	storage := newStubStorage()
	storage.data[ports.KeyCart] = []byte("{broken")

	cart := NewCartStore(storage, discardLogger)
	cart.Restore(context.Background())

	assert.Empty(t, cart.Items())
	_, ok := storage.data[ports.KeyCart]
	assert.False(t, ok, "unreadable record must be cleared")
}
