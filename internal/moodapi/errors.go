package moodapi

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is an application-level failure: either an HTTP status >= 400 or
// a 2xx payload carrying success=false. Message holds the server-supplied
// text when there was one.
type APIError struct {
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		if e.Message != "" {
			return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, e.Message)
		}
		return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
	}
	if e.Message != "" {
		return fmt.Sprintf("api %s reported failure: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("api %s reported failure", e.Path)
}

// IsAPIError reports whether err is an application-level failure rather than
// a transport failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// Message returns the server-supplied message carried by err, or fallback
// when there is none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.Message); msg != "" {
			return msg
		}
	}
	return fallback
}
