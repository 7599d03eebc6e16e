package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrBreakerOpen is returned when the circuit breaker rejects a request
// without sending it.
var ErrBreakerOpen = errors.New("api: circuit breaker open")

// TransportError is a network failure or a request timeout.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the request was cut off by its deadline.
func (e *TransportError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// HTTPStatusError is a response outside the 2xx range.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP Error: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP Error: %d: %s", e.StatusCode, e.Body)
}

// DeserializationError is a body that could not be decoded or did not
// describe a complete payload.
type DeserializationError struct {
	URL string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.URL, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
