package backend

import (
	"context"
	"net/http"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

const groupAccounts = "accounts"

// authUserResponse is the wire shape of a login/registration response. Roles
// arrive as raw strings and are narrowed to the closed Role set here, at the
// boundary.
type authUserResponse struct {
	UserID                      string   `json:"user_id"`
	Email                       string   `json:"email"`
	Name                        string   `json:"name"`
	Roles                       []string `json:"roles"`
	AdministeredTenantID        string   `json:"administered_tenant_id,omitempty"`
	AdministeredTenantSubdomain string   `json:"administered_tenant_subdomain,omitempty"`
	PhoneNumber                 string   `json:"phone_number,omitempty"`
	AccessToken                 string   `json:"access_token,omitempty"`
}

func (r *authUserResponse) toDomain() *domain.AuthUser {
	return &domain.AuthUser{
		UserID:                      r.UserID,
		Email:                       r.Email,
		Name:                        r.Name,
		Roles:                       domain.ParseRoles(r.Roles),
		AdministeredTenantID:        r.AdministeredTenantID,
		AdministeredTenantSubdomain: r.AdministeredTenantSubdomain,
		PhoneNumber:                 r.PhoneNumber,
		AccessToken:                 r.AccessToken,
	}
}

func (c *Client) Login(ctx context.Context, in ports.LoginInput) (*domain.AuthUser, error) {
	if err := c.checkPayload(in); err != nil {
		return nil, err
	}
	var resp authUserResponse
	if err := c.do(ctx, groupAccounts, http.MethodPost, "/accounts/login", nil, in, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) RegisterCustomer(ctx context.Context, subdomain string, in ports.RegisterCustomerInput) (*domain.AuthUser, error) {
	if err := c.checkPayload(in); err != nil {
		return nil, err
	}
	var resp authUserResponse
	path := "/public/tenants/" + subdomain + "/accounts/register"
	if err := c.do(ctx, groupAccounts, http.MethodPost, path, nil, in, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) RegisterAdmin(ctx context.Context, in ports.RegisterAdminInput) (*domain.AuthUser, error) {
	if err := c.checkPayload(in); err != nil {
		return nil, err
	}
	var resp authUserResponse
	if err := c.do(ctx, groupAccounts, http.MethodPost, "/accounts/register-admin", nil, in, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, groupAccounts, http.MethodPost, "/accounts/logout", nil, nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, groupAccounts, http.MethodPost, "/accounts/forgot-password", nil, body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, in ports.ResetPasswordInput) error {
	if err := c.checkPayload(in); err != nil {
		return err
	}
	return c.do(ctx, groupAccounts, http.MethodPost, "/accounts/reset-password", nil, in, nil)
}

func (c *Client) Profile(ctx context.Context) (*domain.AuthUser, error) {
	var resp authUserResponse
	if err := c.do(ctx, groupAccounts, http.MethodGet, "/accounts/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.AuthUser, error) {
	if err := c.checkPayload(in); err != nil {
		return nil, err
	}
	var resp authUserResponse
	if err := c.do(ctx, groupAccounts, http.MethodPut, "/accounts/profile", nil, in, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) error {
	if err := c.checkPayload(in); err != nil {
		return err
	}
	return c.do(ctx, groupAccounts, http.MethodPost, "/accounts/change-password", nil, in, nil)
}
