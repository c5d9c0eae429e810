package graph

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotConfigured is returned when the provider credentials are absent.
var ErrNotConfigured = errors.New("calendar sync is not configured")

// ProviderError is a non-2xx response from the calendar API.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("graph: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a provider 404.
func IsNotFound(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a provider 401.
func IsUnauthorized(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.StatusCode == http.StatusUnauthorized
}
