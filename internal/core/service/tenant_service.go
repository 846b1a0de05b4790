package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

// SubdomainFromHost derives the tenant subdomain from a hostname.
//
//	"foo.localhost"      → "foo"
//	"localhost"          → ""
//	"www.bakeryhub.com"  → ""
//	"foo.bakeryhub.com"  → "foo"
//	"a.b.localhost"      → "a"
//
// Local hosts need two labels (sub + localhost); public domains need three
// (sub + domain + tld). "www" is never a tenant.
func SubdomainFromHost(host string) string {
	host = strings.ToLower(host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	parts := strings.Split(host, ".")

	if parts[len(parts)-1] == "localhost" {
		if len(parts) >= 2 && parts[0] != "www" {
			return parts[0]
		}
		return ""
	}
	if len(parts) >= 3 && parts[0] != "www" {
		return parts[0]
	}
	return ""
}

// TenantState is the resolution state exposed to the tenant app shell.
type TenantState struct {
	Info    *domain.TenantInfo
	Loading bool
	Err     error
}

// TenantResolver fetches tenant metadata by subdomain and caches it for the
// session. The cached value never auto-refreshes; only a Resolve call with a
// different subdomain fetches again.
type TenantResolver struct {
	api ports.TenantsAPI
	log zerolog.Logger

	mu        sync.Mutex
	subdomain string
	state     TenantState
}

func NewTenantResolver(api ports.TenantsAPI, log zerolog.Logger) *TenantResolver {
	return &TenantResolver{api: api, log: log}
}

// Resolve loads tenant metadata for the subdomain. Repeated calls for the
// same subdomain return the cached state, including cached failures; pass a
// new subdomain to force a fresh fetch.
func (r *TenantResolver) Resolve(ctx context.Context, subdomain string) TenantState {
	r.mu.Lock()
	if subdomain == r.subdomain && !r.state.Loading && (r.state.Info != nil || r.state.Err != nil) {
		state := r.state
		r.mu.Unlock()
		return state
	}
	r.subdomain = subdomain
	r.state = TenantState{Loading: true}
	r.mu.Unlock()

	info, err := r.api.TenantBySubdomain(ctx, subdomain)

	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case err == nil:
		r.state = TenantState{Info: info}
	case errors.Is(err, domain.ErrTenantNotFound):
		r.log.Info().Str("subdomain", subdomain).Msg("tenant not found")
		r.state = TenantState{Err: domain.ErrTenantNotFound}
	default:
		r.log.Error().Err(err).Str("subdomain", subdomain).Msg("tenant resolution failed")
		r.state = TenantState{Err: err}
	}
	return r.state
}

// State returns the last resolution result without triggering a fetch.
func (r *TenantResolver) State() TenantState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
