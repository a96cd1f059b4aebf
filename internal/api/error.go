package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents a non-2xx response from the backend.
type Error struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Message is the server-reported error message, "" when the body
	// carried no structured envelope.
	Message string

	// RequestID is the X-Request-ID the client stamped on the request.
	RequestID string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsAuthFailure reports whether the response was an authorization failure.
func (e *Error) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether the response was a 404.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// errorEnvelope is the backend's structured error body.
// Some endpoints use "error", some "message"; accept both.
type errorEnvelope struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// newError builds an Error from a failed response body.
func newError(statusCode int, body []byte, requestID string) *Error {
	apiErr := &Error{StatusCode: statusCode, RequestID: requestID}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			apiErr.Message = envelope.Error
		} else {
			apiErr.Message = envelope.Message
		}
	}

	return apiErr
}

// ErrorMessage extracts a user-facing message from an error: the server's
// message verbatim when present, otherwise the given fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
