package ports

import (
	"context"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

// StatisticsQuery is the full parameter set of the order-statistics endpoint:
// the shared dashboard filters extended with the widget's own parameters.
type StatisticsQuery struct {
	Filters            domain.DashboardFilters
	Metric             string // "revenue", "order_count", "average_order_value"
	Granularity        string // "day", "week", "month"; empty for breakdowns
	BreakdownDimension domain.FilterDimension
}

// StatisticsAPI is the dashboard's data source. Implementations must honour
// ctx cancellation so superseded widget fetches can be abandoned.
type StatisticsAPI interface {
	OrderStatistics(ctx context.Context, q StatisticsQuery) (*domain.StatisticsResult, error)
}
