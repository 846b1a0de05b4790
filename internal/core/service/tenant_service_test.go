package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Subdomain parsing
// ---------------------------------------------------------------------------

func TestSubdomainFromHost(t *testing.T) {
	cases := []struct {
		host string
		want string
	}{
		{"foo.localhost", "foo"},
		{"localhost", ""},
		{"www.bakeryhub.com", ""},
		{"foo.bakeryhub.com", "foo"},
		{"a.b.localhost", "a"},
		{"www.localhost", ""},
		{"bakeryhub.com", ""},
		{"FOO.localhost", "foo"},
		{"foo.localhost:5173", "foo"},
	}
	for _, tc := range cases {
		if got := SubdomainFromHost(tc.host); got != tc.want {
			t.Errorf("SubdomainFromHost(%q): want %q, got %q", tc.host, tc.want, got)
		}
	}
}

// ---------------------------------------------------------------------------
// Tenant resolution
// ---------------------------------------------------------------------------

type stubTenantsAPI struct {
	tenants map[string]*domain.TenantInfo
	calls   int
	failAll error
}

func (a *stubTenantsAPI) TenantBySubdomain(_ context.Context, subdomain string) (*domain.TenantInfo, error) {
	a.calls++
	if a.failAll != nil {
		return nil, a.failAll
	}
	info, ok := a.tenants[subdomain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTenantNotFound, subdomain)
	}
	clone := *info
	return &clone, nil
}

func (a *stubTenantsAPI) Theme(context.Context) (*domain.Theme, error) { return nil, nil }
func (a *stubTenantsAPI) UpdateTheme(context.Context, domain.Theme) error {
	return nil
}

func TestTenantResolver_ResolvesAndCaches(t *testing.T) {
	api := &stubTenantsAPI{tenants: map[string]*domain.TenantInfo{
		"rosebakery": {Name: "Rose Bakery", Subdomain: "rosebakery"},
	}}
	r := NewTenantResolver(api, discardLogger)
	ctx := context.Background()

	state := r.Resolve(ctx, "rosebakery")
	if state.Err != nil || state.Info == nil || state.Info.Name != "Rose Bakery" {
		t.Fatalf("unexpected state: %+v", state)
	}

	// Same subdomain: cached, no second fetch.
	_ = r.Resolve(ctx, "rosebakery")
	if api.calls != 1 {
		t.Errorf("expected 1 fetch for repeated subdomain, got %d", api.calls)
	}
}

func TestTenantResolver_RefetchesOnSubdomainChange(t *testing.T) {
	api := &stubTenantsAPI{tenants: map[string]*domain.TenantInfo{
		"a": {Name: "A", Subdomain: "a"},
		"b": {Name: "B", Subdomain: "b"},
	}}
	r := NewTenantResolver(api, discardLogger)
	ctx := context.Background()

	_ = r.Resolve(ctx, "a")
	state := r.Resolve(ctx, "b")

	if api.calls != 2 {
		t.Errorf("expected 2 fetches for 2 subdomains, got %d", api.calls)
	}
	if state.Info == nil || state.Info.Name != "B" {
		t.Errorf("expected tenant B, got %+v", state.Info)
	}
}

func TestTenantResolver_NotFound(t *testing.T) {
	api := &stubTenantsAPI{tenants: map[string]*domain.TenantInfo{}}
	r := NewTenantResolver(api, discardLogger)

	state := r.Resolve(context.Background(), "ghost")
	if !errors.Is(state.Err, domain.ErrTenantNotFound) {
		t.Errorf("expected ErrTenantNotFound, got %v", state.Err)
	}
	if state.Info != nil {
		t.Error("not-found state must carry no tenant info")
	}
}

func TestTenantResolver_GenericErrorSurfacedOnce(t *testing.T) {
	api := &stubTenantsAPI{failAll: errors.New("connection refused")}
	r := NewTenantResolver(api, discardLogger)
	ctx := context.Background()

	state := r.Resolve(ctx, "rosebakery")
	if state.Err == nil || errors.Is(state.Err, domain.ErrTenantNotFound) {
		t.Fatalf("expected generic error, got %v", state.Err)
	}

	// The failure is cached for the session like a success: no retry loop.
	_ = r.Resolve(ctx, "rosebakery")
	if api.calls != 1 {
		t.Errorf("expected no automatic retry, got %d calls", api.calls)
	}
}
