package domain

import (
	"fmt"
	"time"
)

// TimePeriod selects the dashboard reporting window.
type TimePeriod string

const (
	PeriodToday   TimePeriod = "today"
	PeriodWeek    TimePeriod = "week"
	PeriodMonth   TimePeriod = "month"
	PeriodYear    TimePeriod = "year"
	PeriodCustom  TimePeriod = "custom"
	PeriodAllTime TimePeriod = "all"
)

// FilterDimension is the drill-down axis pinned by clicking a chart segment.
type FilterDimension string

const (
	DimensionNone     FilterDimension = ""
	DimensionCategory FilterDimension = "category"
	DimensionProduct  FilterDimension = "product"
	DimensionDay      FilterDimension = "dayOfWeek"
)

// DashboardFilters is the single filter state shared by all dashboard
// widgets. Widgets never mutate it directly; the filter store owns all
// rewrites and fans changes out to subscribers.
type DashboardFilters struct {
	TimePeriod       TimePeriod      `json:"time_period"`
	CustomStartDate  *time.Time      `json:"custom_start_date,omitempty"`
	CustomEndDate    *time.Time      `json:"custom_end_date,omitempty"`
	FilterDimension  FilterDimension `json:"filter_dimension,omitempty"`
	FilterValue      string          `json:"filter_value,omitempty"`
	FilterValueLabel string          `json:"filter_value_label,omitempty"`
}

// Key returns a stable serialization of the filter state used for change
// detection and cancellation of superseded widget fetches.
func (f DashboardFilters) Key() string {
	start, end := "", ""
	if f.CustomStartDate != nil {
		start = f.CustomStartDate.UTC().Format(time.RFC3339)
	}
	if f.CustomEndDate != nil {
		end = f.CustomEndDate.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s", f.TimePeriod, start, end, f.FilterDimension, f.FilterValue)
}

// HasDrillDown reports whether a chart drill-down filter is pinned.
func (f DashboardFilters) HasDrillDown() bool {
	return f.FilterDimension != DimensionNone
}

// StatisticsPoint is one bucket of the order-statistics response.
type StatisticsPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// BucketStart/BucketEnd bound a time bucket; zero for non-time breakdowns.
	BucketStart time.Time `json:"bucket_start,omitempty"`
	BucketEnd   time.Time `json:"bucket_end,omitempty"`
}

// StatisticsResult is the parametrized statistics endpoint's payload.
type StatisticsResult struct {
	Metric string            `json:"metric"`
	Total  float64           `json:"total"`
	Points []StatisticsPoint `json:"points"`
}
