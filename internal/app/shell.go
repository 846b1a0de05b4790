// Package app wires configuration, storage, the backend client and the state
// stores into the two client applications: the root marketing/admin app and
// the tenant-scoped storefront, selected by the request hostname.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bakeryhub/storefront/internal/core/ports"
	"github.com/bakeryhub/storefront/internal/core/service"
	"github.com/bakeryhub/storefront/internal/infrastructure/backend"
	"github.com/bakeryhub/storefront/internal/infrastructure/config"
	"github.com/bakeryhub/storefront/internal/infrastructure/storage"
)

// AppKind distinguishes the two client applications.
type AppKind string

const (
	KindRoot   AppKind = "root"
	KindTenant AppKind = "tenant"
)

// Mount is the result of resolving a hostname: which app shell to render and,
// for tenant apps, the tenant resolution state.
type Mount struct {
	Kind      AppKind
	Subdomain string
	Routes    []Route
	Tenant    service.TenantState
}

// Shell owns the process-wide stores and the backend client.
type Shell struct {
	Config        *config.Config
	Backend       *backend.Client
	Session       *service.SessionStore
	Cart          *service.CartStore
	Tenants       *service.TenantResolver
	Orders        *service.OrderService
	Notifications *service.NotificationCenter
	Uploader      ports.ImageUploader

	log zerolog.Logger
}

// New builds the shell: storage adapter per config, backend client with the
// session's token source, stores with their watchers installed.
func New(ctx context.Context, cfg *config.Config, nav ports.Navigator, log zerolog.Logger) (*Shell, error) {
	store, err := newStateStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var session *service.SessionStore
	client := backend.New(cfg.APIBaseURL, log,
		backend.WithTokenSource(func() string {
			if session == nil {
				return ""
			}
			return session.Token()
		}),
	)

	session = service.NewSessionStore(store, client, nav, log)
	cart := service.NewCartStore(store, log)
	cart.WatchSession(session)
	session.WatchRedirect(nav)

	shell := &Shell{
		Config:        cfg,
		Backend:       client,
		Session:       session,
		Cart:          cart,
		Tenants:       service.NewTenantResolver(client, log),
		Orders:        service.NewOrderService(client, cart, session, log),
		Notifications: service.NewNotificationCenter(),
		Uploader:      backend.NewCloudinaryUploader(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset),
		log:           log,
	}

	session.Restore(ctx)
	cart.Restore(ctx)
	return shell, nil
}

// Mount resolves the hostname into an app shell. No subdomain renders the
// root app; a subdomain mounts the tenant app and immediately resolves the
// tenant's metadata.
func (s *Shell) Mount(ctx context.Context, host string) Mount {
	subdomain := service.SubdomainFromHost(host)
	if subdomain == "" {
		return Mount{Kind: KindRoot, Routes: RootRoutes()}
	}
	return Mount{
		Kind:      KindTenant,
		Subdomain: subdomain,
		Routes:    TenantRoutes(),
		Tenant:    s.Tenants.Resolve(ctx, subdomain),
	}
}

// Close releases store resources (pending notification timers).
func (s *Shell) Close() {
	s.Notifications.Close()
}

func newStateStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.StateBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		client, err := storage.Connect(ctx, storage.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client), nil
	case "file":
		return storage.NewFileStore(cfg.StateDir)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}
