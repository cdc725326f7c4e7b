package backend

import "fmt"

// StatusError is returned for any non 2xx response from the agent backend.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// ParseError is returned when a response body cannot be decoded or fails validation.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("backend %s: malformed response: %s", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
