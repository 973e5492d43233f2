package kimloan

import (
	"errors"
	"fmt"
)

// Auth errors.
var (
	// ErrCredentialsRejected is returned by Login when the backend rejects
	// the username/password pair, or when a login response carries no
	// access token.
	ErrCredentialsRejected = errors.New("incorrect username or password")

	// ErrSessionExpired is returned once the refresh protocol has been
	// exhausted: the access token was rejected and no new one could be
	// obtained. Local session state has already been cleared when a caller
	// sees this error.
	ErrSessionExpired = errors.New("session expired, login required")
)

// APIError is a non-2xx response from the backend. Detail carries the
// backend's human-readable message when one could be extracted from the
// response body.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("API error (%d)", e.StatusCode)
}
