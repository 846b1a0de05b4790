package ports

import (
	"context"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

// LoginInput carries the credentials posted to the login endpoint.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterCustomerInput registers a customer account on a tenant storefront.
type RegisterCustomerInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// RegisterAdminInput registers a bakery owner together with their store.
type RegisterAdminInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	StoreName   string `json:"store_name" validate:"required"`
	Subdomain   string `json:"subdomain" validate:"required,hostname_rfc1123"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ResetPasswordInput completes the password reset flow.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ChangePasswordInput changes the authenticated user's password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileInput edits the authenticated user's profile fields.
type UpdateProfileInput struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// AccountsAPI is the accounts endpoint group of the backend collaborator.
type AccountsAPI interface {
	Login(ctx context.Context, in LoginInput) (*domain.AuthUser, error)
	RegisterCustomer(ctx context.Context, subdomain string, in RegisterCustomerInput) (*domain.AuthUser, error)
	RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*domain.AuthUser, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, in ResetPasswordInput) error
	Profile(ctx context.Context) (*domain.AuthUser, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.AuthUser, error)
	ChangePassword(ctx context.Context, in ChangePasswordInput) error
}
