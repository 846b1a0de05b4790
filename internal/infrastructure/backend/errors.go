package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is the backend's error envelope. Any field may be absent; the
// HTTP status code is always recorded.
type APIError struct {
	StatusCode int                 `json:"-"`
	Type       string              `json:"type,omitempty"`
	Title      string              `json:"title,omitempty"`
	Status     int                 `json:"status,omitempty"`
	Detail     string              `json:"detail,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Message    string              `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.UserMessage())
}

// UserMessage selects the user-facing text in priority order
// detail > title > message, with a generic fallback.
func (e *APIError) UserMessage() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Title != "":
		return e.Title
	case e.Message != "":
		return e.Message
	default:
		return "something went wrong, please try again"
	}
}

// decodeAPIError reads a non-2xx response body into an APIError. Bodies that
// are not the expected envelope still yield a usable error with the status
// code.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}

// asAPIError extracts an *APIError from an error chain.
func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is a backend 403.
func IsForbidden(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusForbidden
}

// IsValidation reports whether err is a backend 400 carrying a field-error
// map that should be merged into the form's field errors.
func IsValidation(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusBadRequest && len(apiErr.Errors) > 0
}

// FieldErrors returns the server-side field-error map, or nil.
func FieldErrors(err error) map[string][]string {
	if apiErr, ok := asAPIError(err); ok {
		return apiErr.Errors
	}
	return nil
}
