package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthLoginFailed     ErrorCode = "AUTH-001"
	ErrCodeAuthRegisterFailed  ErrorCode = "AUTH-002"
	ErrCodeAuthNoRefreshToken  ErrorCode = "AUTH-003"
	ErrCodeAuthRefreshFailed   ErrorCode = "AUTH-004"
	ErrCodeAuthUnauthenticated ErrorCode = "AUTH-005"

	// API errors (API-001 to API-099)
	ErrCodeAPIUnreachable  ErrorCode = "API-001"
	ErrCodeAPIUnauthorized ErrorCode = "API-002"
	ErrCodeAPIServerError  ErrorCode = "API-003"
	ErrCodeAPIBadRequest   ErrorCode = "API-004"
	ErrCodeAPINotFound     ErrorCode = "API-005"
	ErrCodeAPIDecodeFailed ErrorCode = "API-006"

	// Prospect errors (PROSPECT-001 to PROSPECT-099)
	ErrCodeProspectNotFound     ErrorCode = "PROSPECT-001"
	ErrCodeProspectCreateFailed ErrorCode = "PROSPECT-002"
	ErrCodeProspectUpdateFailed ErrorCode = "PROSPECT-003"
	ErrCodeProspectDeleteFailed ErrorCode = "PROSPECT-004"
	ErrCodeProspectSoftData     ErrorCode = "PROSPECT-005"
	ErrCodeProspectEmailDraft   ErrorCode = "PROSPECT-006"

	// Batch errors (BATCH-001 to BATCH-099)
	ErrCodeBatchEmptySelection ErrorCode = "BATCH-001"
	ErrCodeBatchStageFailed    ErrorCode = "BATCH-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid   ErrorCode = "CONFIG-001"
	ErrCodeConfigUnmarshal ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeFileUnmarshal   ErrorCode = "IO-004"
)

// ClientError represents an enhanced error with code, suggestions, and documentation
type ClientError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// New creates a new ClientError
func New(code ErrorCode, message string) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ClientError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ClientError) WithSuggestion(suggestion string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ClientError) WithSuggestions(suggestions ...string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *ClientError) WithDocs(url string) *ClientError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewUnauthenticatedError creates an error for commands that require a session
func NewUnauthenticatedError() *ClientError {
	return New(ErrCodeAuthUnauthenticated, "not logged in").
		WithSuggestion("Run 'prospectctl auth login' to authenticate").
		WithSuggestion("Check that your credentials file has not been removed")
}

// NewRefreshFailedError creates an error for a failed token refresh
func NewRefreshFailedError(cause error) *ClientError {
	return Wrap(ErrCodeAuthRefreshFailed, "session refresh failed", cause).
		WithSuggestion("Run 'prospectctl auth login' to start a new session")
}

// NewAPIUnreachableError creates an error for transport-level failures
func NewAPIUnreachableError(baseURL string, cause error) *ClientError {
	return Wrap(ErrCodeAPIUnreachable, fmt.Sprintf("could not reach API at %s", baseURL), cause).
		WithSuggestion("Check that the backend is running").
		WithSuggestion("Run 'prospectctl status' to probe the backend").
		WithSuggestion("Verify api_url in ~/.prospectctl/config.yaml")
}

// NewEmptySelectionError creates an error for batch calls with no prospect ids
func NewEmptySelectionError() *ClientError {
	return New(ErrCodeBatchEmptySelection, "no prospects selected").
		WithSuggestion("Pass at least one prospect id").
		WithSuggestion("Use 'prospectctl list' to find prospect ids")
}

// NewProspectNotFoundError creates a prospect lookup error
func NewProspectNotFoundError(id string) *ClientError {
	return New(ErrCodeProspectNotFound, fmt.Sprintf("prospect not found: %s", id)).
		WithSuggestion("Run 'prospectctl list' to see known prospects")
}

// NewConfigUnmarshalError creates a config parse error
func NewConfigUnmarshalError(path string, cause error) *ClientError {
	return Wrap(ErrCodeConfigUnmarshal, fmt.Sprintf("failed to parse config file: %s", path), cause).
		WithSuggestion("Check the YAML syntax").
		WithSuggestion("Delete the file to fall back to defaults")
}
