package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes signal the outcome of a bigcalc run to the OS.
const (
	ExitSuccess       = 0   // Every requested evaluation succeeded.
	ExitErrorGeneric  = 1   // An expression could not be evaluated.
	ExitErrorTimeout  = 2   // The run exceeded its timeout.
	ExitErrorMismatch = 3   // At least one test vector produced an unexpected result.
	ExitErrorConfig   = 4   // Invalid flags, environment or vector file.
	ExitErrorCanceled = 130 // The run was interrupted (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid flag
// value or an unreadable vector file.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvaluationError reports that an operation could not be applied to its
// operands. The cause is usually one of the bigint sentinel errors.
type EvaluationError struct {
	// Op is the name of the operation being evaluated, e.g. "sub".
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error returns the operation name followed by the cause.
func (e EvaluationError) Error() string {
	if e.Op == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the cause so errors.Is can match the bigint sentinels.
func (e EvaluationError) Unwrap() error { return e.Cause }

// TimeoutError represents a run that exceeded its configured time limit.
type TimeoutError struct {
	// Operation names what was running, e.g. "verify".
	Operation string
	// Limit is the duration after which the operation was abandoned.
	Limit time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap reports the timeout as a deadline error.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by the application to its exit code.
// Deadline errors take precedence over cancellation, and configuration or
// validation errors over evaluation failures. A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
