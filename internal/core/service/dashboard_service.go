package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bakeryhub/storefront/internal/api/metrics"
	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

// FilterStore owns the dashboard's shared filter state and fans out every
// rewrite to subscribed widgets. Widgets never hold a reference to mutable
// filter state; they receive value copies on each change.
type FilterStore struct {
	mu      sync.Mutex
	filters domain.DashboardFilters
	subs    map[int]func(domain.DashboardFilters)
	nextID  int
}

func NewFilterStore(initial domain.DashboardFilters) *FilterStore {
	if initial.TimePeriod == "" {
		initial.TimePeriod = domain.PeriodMonth
	}
	return &FilterStore{
		filters: initial,
		subs:    make(map[int]func(domain.DashboardFilters)),
	}
}

// Get returns the current filter value.
func (f *FilterStore) Get() domain.DashboardFilters {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters
}

// Set replaces the whole filter value.
func (f *FilterStore) Set(filters domain.DashboardFilters) {
	f.mu.Lock()
	f.filters = filters
	subs := f.snapshotSubs()
	value := f.filters
	f.mu.Unlock()
	fanOut(subs, value)
}

// DrillDownTime pins a custom range bounded to the clicked time bucket and
// records its human label.
func (f *FilterStore) DrillDownTime(bucketStart, bucketEnd time.Time, label string) {
	f.mu.Lock()
	f.filters.TimePeriod = domain.PeriodCustom
	f.filters.CustomStartDate = &bucketStart
	f.filters.CustomEndDate = &bucketEnd
	f.filters.FilterValueLabel = label
	subs := f.snapshotSubs()
	value := f.filters
	f.mu.Unlock()
	fanOut(subs, value)
}

// DrillDown pins a dimension filter from a clicked chart segment.
func (f *FilterStore) DrillDown(dim domain.FilterDimension, value, label string) {
	f.mu.Lock()
	f.filters.FilterDimension = dim
	f.filters.FilterValue = value
	f.filters.FilterValueLabel = label
	subs := f.snapshotSubs()
	filters := f.filters
	f.mu.Unlock()
	fanOut(subs, filters)
}

// ClearDrillDown resets the dimension filter while leaving the time period
// untouched.
func (f *FilterStore) ClearDrillDown() {
	f.mu.Lock()
	f.filters.FilterDimension = domain.DimensionNone
	f.filters.FilterValue = ""
	f.filters.FilterValueLabel = ""
	subs := f.snapshotSubs()
	value := f.filters
	f.mu.Unlock()
	fanOut(subs, value)
}

// Subscribe registers a widget listener and returns its unsubscribe func.
func (f *FilterStore) Subscribe(sub func(domain.DashboardFilters)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = sub
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *FilterStore) snapshotSubs() []func(domain.DashboardFilters) {
	subs := make([]func(domain.DashboardFilters), 0, len(f.subs))
	for _, sub := range f.subs {
		subs = append(subs, sub)
	}
	return subs
}

func fanOut(subs []func(domain.DashboardFilters), value domain.DashboardFilters) {
	for _, sub := range subs {
		sub(value)
	}
}

// WidgetConfig is a widget's own query contribution on top of the shared
// filters.
type WidgetConfig struct {
	Name               string
	Metric             string
	Granularity        string
	BreakdownDimension domain.FilterDimension
}

// Widget is one independently-fetching dashboard widget (KPI card, trend
// chart, breakdown chart). Each filter change triggers its own fetch; a newer
// change cancels the in-flight request and the aborted response is dropped,
// never applied. Widgets share no cache: identical parameter sets are
// refetched per widget.
type Widget struct {
	cfg WidgetConfig
	api ports.StatisticsAPI
	log zerolog.Logger

	mu      sync.Mutex
	lastKey string
	gen     int
	cancel  context.CancelFunc
	result  *domain.StatisticsResult
	err     error
	done    chan struct{} // closed when the current fetch settles; tests only
	subs    []func(*domain.StatisticsResult, error)
}

func NewWidget(cfg WidgetConfig, api ports.StatisticsAPI, log zerolog.Logger) *Widget {
	return &Widget{cfg: cfg, api: api, log: log}
}

// Attach subscribes the widget to the filter store and performs the initial
// fetch. The returned detach func unsubscribes and cancels any in-flight
// request.
func (w *Widget) Attach(store *FilterStore) func() {
	unsubscribe := store.Subscribe(w.Refresh)
	w.Refresh(store.Get())
	return func() {
		unsubscribe()
		w.mu.Lock()
		if w.cancel != nil {
			w.cancel()
		}
		w.mu.Unlock()
	}
}

// Refresh re-derives the widget's query from the filters and fetches. A
// filter value whose serialized form is unchanged does not re-run the fetch
// (the effect dependency is the serialized filter state).
func (w *Widget) Refresh(filters domain.DashboardFilters) {
	key := filters.Key()

	w.mu.Lock()
	if key == w.lastKey {
		w.mu.Unlock()
		return
	}
	w.lastKey = key
	if w.cancel != nil {
		w.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.gen++
	gen := w.gen
	done := make(chan struct{})
	w.done = done
	w.mu.Unlock()

	go func() {
		defer close(done)
		result, err := w.api.OrderStatistics(ctx, ports.StatisticsQuery{
			Filters:            filters,
			Metric:             w.cfg.Metric,
			Granularity:        w.cfg.Granularity,
			BreakdownDimension: w.cfg.BreakdownDimension,
		})

		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			// Superseded by a newer filter value; drop silently.
			metrics.DashboardRefreshesTotal.WithLabelValues("stale").Inc()
			return
		}

		w.mu.Lock()
		if gen != w.gen {
			w.mu.Unlock()
			metrics.DashboardRefreshesTotal.WithLabelValues("stale").Inc()
			return
		}
		w.result = result
		w.err = err
		subs := append(([]func(*domain.StatisticsResult, error))(nil), w.subs...)
		w.mu.Unlock()

		if err != nil {
			metrics.DashboardRefreshesTotal.WithLabelValues("error").Inc()
			w.log.Error().Err(err).Str("widget", w.cfg.Name).Msg("statistics fetch failed")
		} else {
			metrics.DashboardRefreshesTotal.WithLabelValues("applied").Inc()
		}
		for _, sub := range subs {
			sub(result, err)
		}
	}()
}

// Result returns the last applied result and error.
func (w *Widget) Result() (*domain.StatisticsResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result, w.err
}

// Subscribe registers a listener for applied results.
func (w *Widget) Subscribe(sub func(*domain.StatisticsResult, error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, sub)
}

// Wait blocks until the current fetch settles. Intended for tests.
func (w *Widget) Wait() {
	w.mu.Lock()
	done := w.done
	w.mu.Unlock()
	if done != nil {
		<-done
	}
}
