package zesty

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrMissingArgument    = errors.New("missing required argument")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnexpectedPayload  = errors.New("unexpected response payload")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrConfigRequired     = errors.New("config is required")
	ErrTokenVerification  = errors.New("token verification failed")
	ErrNoVersionsFound    = errors.New("no versions found")
	ErrModelNotFound      = errors.New("model not found")
	ErrStorageUnavailable = errors.New("bin has no storage configured")
)

// ArgumentError is returned when an operation is called without a required
// argument, or with one it cannot use. It is always raised before any request
// is sent.
type ArgumentError struct {
	// Op names the operation, e.g. "Instance.GetSetting".
	Op string
	// Param names the offending argument.
	Param string
	// Reason is set for invalid (as opposed to missing) arguments.
	Reason string
}

// NewMissingArgument creates an ArgumentError for a missing argument.
func NewMissingArgument(op, param string) *ArgumentError {
	return &ArgumentError{Op: op, Param: param}
}

// NewInvalidArgument creates an ArgumentError for an argument that is present but unusable.
func NewInvalidArgument(op, param, reason string) *ArgumentError {
	return &ArgumentError{Op: op, Param: param, Reason: reason}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid `%s` argument: %s", e.Op, e.Param, e.Reason)
	}

	return fmt.Sprintf("%s: missing required `%s` argument", e.Op, e.Param)
}

// Unwrap lets errors.Is match ErrMissingArgument or ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	if e.Reason != "" {
		return ErrInvalidArgument
	}

	return ErrMissingArgument
}

// StatusError reports a completed response whose status did not match what
// the caller expected.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
	Envelope   *Envelope
}

// NewStatusError builds a StatusError from an envelope.
func NewStatusError(op string, env *Envelope) *StatusError {
	statusErr := &StatusError{Op: op}
	if env != nil {
		statusErr.StatusCode = env.StatusCode
		statusErr.Message = env.Message()
		statusErr.Envelope = env
	}

	return statusErr
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	text := http.StatusText(e.StatusCode)
	if e.Message != "" {
		text = e.Message
	}

	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, text)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// IsNotFound checks if the error is a status error for a missing resource.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a status error for a rejected session.
func IsUnauthorized(err error) bool {
	status := statusOf(err)

	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// IsArgumentError checks if the error was raised by local argument validation.
func IsArgumentError(err error) bool {
	argErr := &ArgumentError{}

	return errors.As(err, &argErr)
}

func statusOf(err error) int {
	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}
