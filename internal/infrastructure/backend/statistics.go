package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

const groupStatistics = "statistics"

// OrderStatistics queries the parametrized dashboard statistics endpoint.
// The ctx is expected to come from the widget's fetch cycle; a superseded
// filter value cancels it and the request is abandoned mid-flight.
func (c *Client) OrderStatistics(ctx context.Context, q ports.StatisticsQuery) (*domain.StatisticsResult, error) {
	params := url.Values{}
	params.Set("time_period", string(q.Filters.TimePeriod))
	if q.Filters.CustomStartDate != nil {
		params.Set("start_date", q.Filters.CustomStartDate.UTC().Format(time.RFC3339))
	}
	if q.Filters.CustomEndDate != nil {
		params.Set("end_date", q.Filters.CustomEndDate.UTC().Format(time.RFC3339))
	}
	if q.Filters.FilterDimension != domain.DimensionNone {
		params.Set("filter_dimension", string(q.Filters.FilterDimension))
		params.Set("filter_value", q.Filters.FilterValue)
	}
	if q.Metric != "" {
		params.Set("metric", q.Metric)
	}
	if q.Granularity != "" {
		params.Set("granularity", q.Granularity)
	}
	if q.BreakdownDimension != domain.DimensionNone {
		params.Set("breakdown", string(q.BreakdownDimension))
	}

	var out domain.StatisticsResult
	if err := c.do(ctx, groupStatistics, http.MethodGet, "/admin/dashboard/order-statistics", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
