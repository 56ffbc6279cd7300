package twitch

import (
	"errors"
	"fmt"
	"net/url"
)

var ErrUserNotFound = errors.New("user not found")

// TransportError covers connection failures and non-2xx responses.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed: status %d, body: %s", e.URL, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a response lacks a field or carries it with the wrong type.
type MissingFieldError struct {
	Field string
	Err   error
}

func (e *MissingFieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("missing field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return e.Err
}

// redact drops signed query parameters so tokens do not end up in logs.
func redact(u *url.URL) string {
	clean := *u
	q := clean.Query()
	for _, key := range []string{"sig", "token", "client_id"} {
		if q.Has(key) {
			q.Set(key, "REDACTED")
		}
	}
	clean.RawQuery = q.Encode()
	return clean.String()
}
