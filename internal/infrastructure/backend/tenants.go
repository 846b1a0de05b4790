package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

const groupTenants = "tenants"

func (c *Client) TenantBySubdomain(ctx context.Context, subdomain string) (*domain.TenantInfo, error) {
	var out domain.TenantInfo
	path := "/public/tenants/" + subdomain
	if err := c.do(ctx, groupTenants, http.MethodGet, path, nil, nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTenantNotFound, subdomain)
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) Theme(ctx context.Context) (*domain.Theme, error) {
	var out domain.Theme
	if err := c.do(ctx, groupTenants, http.MethodGet, "/admin/theme", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTheme(ctx context.Context, theme domain.Theme) error {
	return c.do(ctx, groupTenants, http.MethodPut, "/admin/theme", nil, theme, nil)
}
