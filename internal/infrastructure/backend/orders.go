package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

const groupOrders = "orders"

type orderPageResponse struct {
	Items      []domain.Order `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

func (c *Client) AdminOrders(ctx context.Context, in ports.ListOrdersInput) (*ports.OrderPage, error) {
	q := url.Values{}
	if in.Status != "" {
		q.Set("status", string(in.Status))
	}
	if !in.DateFrom.IsZero() {
		q.Set("date_from", in.DateFrom.UTC().Format(time.RFC3339))
	}
	if !in.DateTo.IsZero() {
		q.Set("date_to", in.DateTo.UTC().Format(time.RFC3339))
	}
	if in.Search != "" {
		q.Set("search", in.Search)
	}
	if in.Page > 0 {
		q.Set("page", strconv.Itoa(in.Page))
	}
	if in.Limit > 0 {
		q.Set("limit", strconv.Itoa(in.Limit))
	}

	var resp orderPageResponse
	if err := c.do(ctx, groupOrders, http.MethodGet, "/admin/orders", q, nil, &resp); err != nil {
		return nil, err
	}
	return &ports.OrderPage{
		Items:      resp.Items,
		Total:      resp.Total,
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalPages: resp.TotalPages,
	}, nil
}

func (c *Client) AdminOrder(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, groupOrders, http.MethodGet, "/admin/orders/"+id, nil, nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	err := c.do(ctx, groupOrders, http.MethodPatch, "/admin/orders/"+id+"/status", nil, body, nil)
	if err != nil && IsNotFound(err) {
		return domain.ErrOrderNotFound
	}
	return err
}

func (c *Client) MyOrders(ctx context.Context, subdomain string) ([]domain.Order, error) {
	var out []domain.Order
	path := "/public/tenants/" + subdomain + "/orders"
	if err := c.do(ctx, groupOrders, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyOrder(ctx context.Context, subdomain, id string) (*domain.Order, error) {
	var out domain.Order
	path := "/public/tenants/" + subdomain + "/orders/" + id
	if err := c.do(ctx, groupOrders, http.MethodGet, path, nil, nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, subdomain string, in ports.CreateOrderInput) (*domain.Order, error) {
	if err := c.checkPayload(in); err != nil {
		return nil, err
	}
	var out domain.Order
	path := "/public/tenants/" + subdomain + "/orders"
	if err := c.do(ctx, groupOrders, http.MethodPost, path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
