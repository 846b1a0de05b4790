package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Filter store
// ---------------------------------------------------------------------------

func TestFilterStore_DefaultsToMonth(t *testing.T) {
	store := NewFilterStore(domain.DashboardFilters{})
	assert.Equal(t, domain.PeriodMonth, store.Get().TimePeriod)
}

func TestFilterStore_DrillDownTimePinsCustomRange(t *testing.T) {
	store := NewFilterStore(domain.DashboardFilters{TimePeriod: domain.PeriodYear})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	store.DrillDownTime(start, end, "March 2026")

	got := store.Get()
	assert.Equal(t, domain.PeriodCustom, got.TimePeriod)
	require.NotNil(t, got.CustomStartDate)
	assert.True(t, got.CustomStartDate.Equal(start))
	assert.Equal(t, "March 2026", got.FilterValueLabel)
}

func TestFilterStore_ClearDrillDownKeepsTimePeriod(t *testing.T) {
	store := NewFilterStore(domain.DashboardFilters{TimePeriod: domain.PeriodWeek})
	store.DrillDown(domain.DimensionCategory, "cat-1", "Cakes")
	require.True(t, store.Get().HasDrillDown())

	store.ClearDrillDown()

	got := store.Get()
	assert.False(t, got.HasDrillDown())
	assert.Empty(t, got.FilterValue)
	assert.Equal(t, domain.PeriodWeek, got.TimePeriod, "clearing a drill-down must not reset the window")
}

func TestFilterStore_FanOutAndUnsubscribe(t *testing.T) {
	store := NewFilterStore(domain.DashboardFilters{})

	var a, b int
	unsubA := store.Subscribe(func(domain.DashboardFilters) { a++ })
	store.Subscribe(func(domain.DashboardFilters) { b++ })

	store.Set(domain.DashboardFilters{TimePeriod: domain.PeriodToday})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	unsubA()
	store.DrillDown(domain.DimensionProduct, "p-1", "Croissant")
	assert.Equal(t, 1, a, "unsubscribed listener must not fire")
	assert.Equal(t, 2, b)
}

// ---------------------------------------------------------------------------
// Widgets
// ---------------------------------------------------------------------------

// blockingStatsAPI parks each fetch until released, honoring cancellation.
type blockingStatsAPI struct {
	mu      sync.Mutex
	calls   []ports.StatisticsQuery
	release chan struct{}
	err     error
}

func newBlockingStatsAPI() *blockingStatsAPI {
	return &blockingStatsAPI{release: make(chan struct{})}
}

func (a *blockingStatsAPI) OrderStatistics(ctx context.Context, q ports.StatisticsQuery) (*domain.StatisticsResult, error) {
	a.mu.Lock()
	a.calls = append(a.calls, q)
	n := len(a.calls)
	release := a.release
	err := a.err
	a.mu.Unlock()

	select {
	case <-release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return &domain.StatisticsResult{Metric: q.Metric, Total: float64(n)}, nil
}

func (a *blockingStatsAPI) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

func TestWidget_AttachFetchesInitialResult(t *testing.T) {
	api := newBlockingStatsAPI()
	close(api.release)
	store := NewFilterStore(domain.DashboardFilters{})
	w := NewWidget(WidgetConfig{Name: "revenue", Metric: "revenue"}, api, discardLogger)

	detach := w.Attach(store)
	defer detach()
	w.Wait()

	result, err := w.Result()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "revenue", result.Metric)
	assert.Equal(t, 1, api.callCount())
}

func TestWidget_IdenticalFilterKeySkipsRefetch(t *testing.T) {
	api := newBlockingStatsAPI()
	close(api.release)
	store := NewFilterStore(domain.DashboardFilters{})
	w := NewWidget(WidgetConfig{Name: "orders", Metric: "orders"}, api, discardLogger)

	detach := w.Attach(store)
	defer detach()
	w.Wait()

	// The label is display-only and excluded from the serialized key.
	current := store.Get()
	current.FilterValueLabel = "same thing, new label"
	store.Set(current)
	w.Wait()

	assert.Equal(t, 1, api.callCount(), "unchanged key must not refetch")
}

func TestWidget_StaleResponseIsDropped(t *testing.T) {
	api := newBlockingStatsAPI()
	store := NewFilterStore(domain.DashboardFilters{})
	w := NewWidget(WidgetConfig{Name: "orders", Metric: "orders"}, api, discardLogger)

	// First fetch parks on the blocked API.
	detach := w.Attach(store)
	defer detach()

	// A newer filter value cancels it; releasing afterwards lets the second
	// fetch complete.
	store.Set(domain.DashboardFilters{TimePeriod: domain.PeriodToday})
	close(api.release)
	w.Wait()

	result, err := w.Result()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, float64(2), result.Total, "only the second response may be applied")
	assert.Equal(t, 2, api.callCount())
}

func TestWidget_FetchErrorSurfacedToSubscribers(t *testing.T) {
	api := newBlockingStatsAPI()
	api.err = errors.New("backend down")
	close(api.release)
	store := NewFilterStore(domain.DashboardFilters{})
	w := NewWidget(WidgetConfig{Name: "orders", Metric: "orders"}, api, discardLogger)

	var seenErr error
	w.Subscribe(func(_ *domain.StatisticsResult, err error) { seenErr = err })

	detach := w.Attach(store)
	defer detach()
	w.Wait()

	_, err := w.Result()
	assert.Error(t, err)
	assert.Error(t, seenErr)
}

func TestWidget_EachWidgetFetchesIndependently(t *testing.T) {
	api := newBlockingStatsAPI()
	close(api.release)
	store := NewFilterStore(domain.DashboardFilters{})

	// Same metric and granularity on both: still two fetches, no shared cache.
	a := NewWidget(WidgetConfig{Name: "kpi", Metric: "orders"}, api, discardLogger)
	b := NewWidget(WidgetConfig{Name: "trend", Metric: "orders"}, api, discardLogger)

	detachA := a.Attach(store)
	defer detachA()
	detachB := b.Attach(store)
	defer detachB()
	a.Wait()
	b.Wait()

	assert.Equal(t, 2, api.callCount())
}

func TestWidget_DetachStopsFilterUpdates(t *testing.T) {
	api := newBlockingStatsAPI()
	close(api.release)
	store := NewFilterStore(domain.DashboardFilters{})
	w := NewWidget(WidgetConfig{Name: "orders", Metric: "orders"}, api, discardLogger)

	detach := w.Attach(store)
	w.Wait()
	detach()

	store.Set(domain.DashboardFilters{TimePeriod: domain.PeriodToday})
	assert.Equal(t, 1, api.callCount(), "detached widget must not refetch")
}
