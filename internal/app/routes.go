package app

import (
	"net/url"
	"strings"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

// Route is one entry of a client-side route table.
type Route struct {
	Path          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// RootRoutes is the marketing/login app served on the apex domain.
func RootRoutes() []Route {
	return []Route{
		{Path: "/"},
		{Path: "/login"},
		{Path: "/register-admin"},
		{Path: "/forgot-password"},
		{Path: "/reset-password"},
		{Path: "/admin", RequiresAuth: true, RequiresAdmin: true},
		{Path: "/admin/*", RequiresAuth: true, RequiresAdmin: true},
	}
}

// TenantRoutes is the storefront app served on a tenant subdomain.
func TenantRoutes() []Route {
	return []Route{
		{Path: "/"},
		{Path: "/products/:id"},
		{Path: "/login"},
		{Path: "/signup"},
		{Path: "/search"},
		{Path: "/cart"},
		{Path: "/my-orders", RequiresAuth: true},
		{Path: "/my-orders/:id", RequiresAuth: true},
		{Path: "/user-profile", RequiresAuth: true},
		{Path: "/change-password", RequiresAuth: true},
	}
}

// Decision is the outcome of guarding a navigation.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	Denied
	NotFound
)

// GuardRoute resolves whether user may enter path within the given route
// table. Unauthenticated users headed to a protected route are redirected to
// login with the intended destination preserved; authenticated users without
// the admin role are denied admin routes outright.
func GuardRoute(routes []Route, path string, user *domain.AuthUser) (Decision, string) {
	route, ok := matchRoute(routes, path)
	if !ok {
		return NotFound, ""
	}
	if route.RequiresAuth && user == nil {
		return RedirectToLogin, "/login?redirect=" + url.QueryEscape(path)
	}
	if route.RequiresAdmin && !user.IsAdmin() {
		return Denied, ""
	}
	return Allow, ""
}

func matchRoute(routes []Route, path string) (Route, bool) {
	for _, route := range routes {
		if matchPath(route.Path, path) {
			return route, true
		}
	}
	return Route{}, false
}

// matchPath supports exact segments, ":param" wildcards and a trailing "*".
func matchPath(pattern, path string) bool {
	pp := strings.Split(strings.Trim(pattern, "/"), "/")
	sp := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range pp {
		if seg == "*" {
			return true
		}
		if i >= len(sp) {
			return false
		}
		if strings.HasPrefix(seg, ":") {
			if sp[i] == "" {
				return false
			}
			continue
		}
		if seg != sp[i] {
			return false
		}
	}
	return len(pp) == len(sp)
}
