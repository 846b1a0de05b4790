package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

const groupCatalog = "catalog"

type productPageResponse struct {
	Items      []domain.Product `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

func (r *productPageResponse) toPort() *ports.ProductPage {
	return &ports.ProductPage{
		Items:      r.Items,
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}

func listProductsQuery(in ports.ListProductsInput) url.Values {
	q := url.Values{}
	if in.CategoryID != "" {
		q.Set("category_id", in.CategoryID)
	}
	if in.TagID != "" {
		q.Set("tag_id", in.TagID)
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
	return q
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, groupCatalog, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Tags(ctx context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	if err := c.do(ctx, groupCatalog, http.MethodGet, "/tags", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Products(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	var resp productPageResponse
	if err := c.do(ctx, groupCatalog, http.MethodGet, "/products", listProductsQuery(in), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, groupCatalog, http.MethodGet, "/products/"+id, nil, nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if err := c.checkPayload(in); err != nil {
		return nil, err
	}
	var out domain.Product
	if err := c.do(ctx, groupCatalog, http.MethodPost, "/products", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	if err := c.checkPayload(in); err != nil {
		return nil, err
	}
	var out domain.Product
	if err := c.do(ctx, groupCatalog, http.MethodPut, "/products/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, groupCatalog, http.MethodDelete, "/products/"+id, nil, nil, nil)
}

func (c *Client) PublicProducts(ctx context.Context, subdomain string, in ports.ListProductsInput) (*ports.ProductPage, error) {
	var resp productPageResponse
	path := "/public/tenants/" + subdomain + "/products"
	if err := c.do(ctx, groupCatalog, http.MethodGet, path, listProductsQuery(in), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) PublicProduct(ctx context.Context, subdomain, id string) (*domain.Product, error) {
	var out domain.Product
	path := "/public/tenants/" + subdomain + "/products/" + id
	if err := c.do(ctx, groupCatalog, http.MethodGet, path, nil, nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) PublicCategories(ctx context.Context, subdomain string) ([]domain.Category, error) {
	var out []domain.Category
	path := "/public/tenants/" + subdomain + "/categories"
	if err := c.do(ctx, groupCatalog, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
