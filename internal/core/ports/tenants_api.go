package ports

import (
	"context"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

// TenantsAPI covers public tenant resolution and admin theme management.
type TenantsAPI interface {
	// TenantBySubdomain fetches public store metadata for a subdomain.
	// A missing store maps to domain.ErrTenantNotFound.
	TenantBySubdomain(ctx context.Context, subdomain string) (*domain.TenantInfo, error)

	Theme(ctx context.Context) (*domain.Theme, error)
	UpdateTheme(ctx context.Context, theme domain.Theme) error
}
