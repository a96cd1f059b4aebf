package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/prospectly/prospectctl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: Success,
		},
		{
			name:     "not logged in",
			err:      errors.NewUnauthenticatedError(),
			expected: AuthError,
		},
		{
			name:     "refresh failed",
			err:      errors.NewRefreshFailedError(stderrors.New("401")),
			expected: AuthError,
		},
		{
			name:     "backend unreachable",
			err:      errors.NewAPIUnreachableError("http://localhost:8000", stderrors.New("connection refused")),
			expected: NetworkError,
		},
		{
			name:     "bad config",
			err:      errors.NewConfigUnmarshalError("/tmp/config.yaml", stderrors.New("yaml")),
			expected: UsageError,
		},
		{
			name:     "empty selection",
			err:      errors.NewEmptySelectionError(),
			expected: UsageError,
		},
		{
			name:     "server error",
			err:      errors.New(errors.ErrCodeAPIServerError, "internal server error"),
			expected: GeneralError,
		},
		{
			name:     "wrapped client error",
			err:      fmt.Errorf("batch run: %w", errors.NewUnauthenticatedError()),
			expected: AuthError,
		},
		{
			name:     "cobra unknown flag",
			err:      stderrors.New("unknown flag: --bogus"),
			expected: UsageError,
		},
		{
			name:     "cobra unknown command",
			err:      stderrors.New(`unknown command "lst" for "prospectctl"`),
			expected: UsageError,
		},
		{
			name:     "plain error",
			err:      stderrors.New("something went wrong"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{Success, "Success"},
		{GeneralError, "General error"},
		{UsageError, "Usage error (invalid flags or arguments)"},
		{AuthError, "Authentication error"},
		{NetworkError, "Network error"},
		{Interrupted, "Interrupted"},
		{99, "Unknown error"},
	}

	for _, tt := range tests {
		got := GetExitCodeDescription(tt.code)
		if got != tt.expected {
			t.Errorf("GetExitCodeDescription(%d) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}
