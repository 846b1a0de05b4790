package ports

import (
	"context"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

// ListProductsInput carries catalog query parameters.
type ListProductsInput struct {
	CategoryID string
	TagID      string
	Search     string // partial match on product name
	Page       int    // 1-based
	Limit      int
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Items      []domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductInput is the admin create/update payload for a catalog entry.
type ProductInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price" validate:"gt=0"`
	ImageURL     string   `json:"image_url,omitempty"`
	CategoryID   string   `json:"category_id,omitempty"`
	TagIDs       []string `json:"tag_ids,omitempty"`
	LeadTimeDays *int     `json:"lead_time_days,omitempty" validate:"omitempty,gte=0"`
	Available    bool     `json:"available"`
}

// CatalogAPI covers categories, tags and products, both the admin-scoped and
// the public tenant-scoped views.
type CatalogAPI interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Tags(ctx context.Context) ([]domain.Tag, error)

	Products(ctx context.Context, in ListProductsInput) (*ProductPage, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Public tenant-scoped catalog, no authentication required.
	PublicProducts(ctx context.Context, subdomain string, in ListProductsInput) (*ProductPage, error)
	PublicProduct(ctx context.Context, subdomain, id string) (*domain.Product, error)
	PublicCategories(ctx context.Context, subdomain string) ([]domain.Category, error)
}
