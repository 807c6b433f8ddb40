package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrStatus is returned for any non-success HTTP status, 404 included.
	ErrStatus = errors.New("unexpected status")

	// ErrNetwork is returned when no response was received (connection
	// errors, timeouts).
	ErrNetwork = errors.New("network error")
)

// StatusError reports a non-success HTTP response.
// It matches ErrStatus, and ErrNotFound when the status is 404.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{ErrStatus, ErrNotFound}
	}
	return []error{ErrStatus}
}

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
