// Package exitcode maps errors to process exit codes so scripts can
// tell authentication failures from network ones.
package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/prospectly/prospectctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure or expired session
	AuthError = 3

	// NetworkError indicates the backend could not be reached
	NetworkError = 4

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit
// code. Coded client errors map by their code group; anything else is
// a general error.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var clientErr *errors.ClientError
	if stderrors.As(err, &clientErr) {
		code := string(clientErr.Code)
		switch {
		case strings.HasPrefix(code, "AUTH-"):
			return AuthError
		case code == string(errors.ErrCodeAPIUnreachable):
			return NetworkError
		case strings.HasPrefix(code, "CONFIG-"):
			return UsageError
		case code == string(errors.ErrCodeBatchEmptySelection):
			return UsageError
		}
		return GeneralError
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unknown command") || strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "required flag") || strings.Contains(msg, "accepts") {
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
