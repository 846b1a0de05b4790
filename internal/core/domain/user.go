package domain

// Role is the closed set of actor roles known to the storefront.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

// ParseRole maps a backend role string to a Role. Unknown strings map to the
// zero Role so callers can skip them.
func ParseRole(s string) Role {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleCustomer):
		return RoleCustomer
	default:
		return ""
	}
}

// Roles is the role set attached to an authenticated user.
type Roles []Role

// ParseRoles converts the backend's role-string list, dropping unknown entries.
func ParseRoles(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := ParseRole(s); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// HasAdmin reports whether the set grants access to admin routes and UI.
func (rs Roles) HasAdmin() bool {
	for _, r := range rs {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// AuthUser models the authenticated session user as returned by the backend
// on login or registration. The access token is persisted alongside the
// profile so a restored session can keep calling authenticated endpoints.
type AuthUser struct {
	UserID                      string `json:"user_id"`
	Email                       string `json:"email"`
	Name                        string `json:"name"`
	Roles                       Roles  `json:"roles"`
	AdministeredTenantID        string `json:"administered_tenant_id,omitempty"`
	AdministeredTenantSubdomain string `json:"administered_tenant_subdomain,omitempty"`
	PhoneNumber                 string `json:"phone_number,omitempty"`
	AccessToken                 string `json:"access_token,omitempty"`
}

// IsAdmin reports whether this user may enter the admin panel.
func (u *AuthUser) IsAdmin() bool {
	return u != nil && u.Roles.HasAdmin()
}
