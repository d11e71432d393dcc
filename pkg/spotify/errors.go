package spotify

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Error represents a Spotify Web API error.
//
// Status is the HTTP status reported by the API; Message is the
// human-readable explanation from the error envelope.
type Error struct {
	Status  int    // HTTP status code
	Message string // Error message from Spotify
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("spotify: error %d: %s", e.Status, e.Message)
}

// Is checks if the target error is a Spotify error with the same status.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// Temporary returns true if the failure is likely transient:
// rate limiting or a server-side error.
func (e *Error) Temporary() bool {
	switch e.Status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// Unauthorized returns true if the access token was rejected.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// Predefined errors for common cases.
var (
	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("spotify: invalid configuration")

	// ErrEmptyQuery is returned when a search is attempted without a query.
	ErrEmptyQuery = errors.New("spotify: search query is empty")

	// ErrEmptyID is returned when an artist operation is attempted without an ID.
	ErrEmptyID = errors.New("spotify: artist ID is empty")
)

// IsAuthError reports whether err means the client credentials were not
// accepted: the token endpoint refused them, the API rejected the token,
// or the credentials were never configured.
//
// A token endpoint that fails with a 5xx is an outage, not an auth failure.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalidConfig) {
		return true
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.Response == nil {
			return true
		}
		return retrieveErr.Response.StatusCode < http.StatusInternalServerError
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Unauthorized()
	}

	return false
}
