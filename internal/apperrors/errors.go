package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// Sync failure taxonomy. A sync run fails atomically with exactly one of
// these; per-entry validation failures are skips, not errors.
var (
	// ErrSyncTimeout indicates the rate feed did not answer within the
	// configured fetch timeout.
	ErrSyncTimeout = errors.New("rate feed timed out")

	// ErrEmptyPayload indicates the feed answered but no entry survived
	// validation.
	ErrEmptyPayload = errors.New("rate feed payload contained no valid entries")

	// ErrPayloadTooLarge indicates the feed answered with more valid entries
	// than the configured ceiling allows.
	ErrPayloadTooLarge = errors.New("rate feed payload exceeds entry ceiling")

	// ErrSyncCooldown indicates a manual sync was requested before the
	// resync cooldown elapsed.
	ErrSyncCooldown = errors.New("rate sync is on cooldown")

	// ErrRateLimited indicates the caller exhausted its manual trigger quota.
	ErrRateLimited = errors.New("too many requests")
)

// AppError carries an HTTP-ish status code alongside a message and the
// underlying cause. Repositories use it to surface infrastructure failures
// without leaking driver errors to handlers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
