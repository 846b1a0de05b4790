package domain

// Theme holds the per-tenant storefront appearance settings editable from the
// admin panel.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	LogoURL        string `json:"logo_url,omitempty"`
}

// TenantInfo is the public metadata of a bakery store, resolved from the
// request hostname's subdomain. Immutable for the session once loaded; a new
// resolution happens only when the subdomain changes.
type TenantInfo struct {
	Name        string `json:"name"`
	Subdomain   string `json:"subdomain"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Theme       *Theme `json:"theme,omitempty"`
}
