package deezer

import (
	"fmt"
)

// TransportError is returned when the request could not be completed or the
// API answered with a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int    // 0 when no response was received
	Body       string // truncated response body for non-2xx statuses
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("request %s: API status %d: %s", e.URL, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("request %s: API status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is returned when a well-formed response carries an error object.
type ServiceError struct {
	Type    string
	Message string
	Code    int
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "Unknown error"
	}
	return fmt.Sprintf("Deezer API Error: %s (Type: %s)", msg, e.Type)
}

func (e *apiError) toServiceError() *ServiceError {
	return &ServiceError{
		Type:    e.Type,
		Message: e.Message,
		Code:    e.Code,
	}
}
