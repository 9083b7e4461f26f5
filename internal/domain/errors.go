package domain

import (
	"errors"
	"fmt"
)

// Predefined domain errors. Handlers map these onto HTTP status codes,
// usecases wrap them with context via DomainError.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists indicates a uniqueness conflict on create.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput indicates a validation failure; the operation was not attempted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientCredit indicates the caller's credit balance cannot cover
	// the requested paid operation. Distinct from validation so the UI can
	// prompt a top-up instead of a retry.
	ErrInsufficientCredit = errors.New("insufficient credit")
	// ErrBackendUnavailable indicates the generation backend is unreachable,
	// unconfigured, or erroring. Never surfaced to end users; the AI usecase
	// converts it into deterministic fallback content.
	ErrBackendUnavailable = errors.New("generation backend unavailable")
	// ErrConflict indicates a resource conflict (version mismatch).
	ErrConflict = errors.New("resource conflict")
	// ErrInternal indicates an internal error.
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code and a user-safe message around a sentinel.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (used for logs and internal wrapping).
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error for a named resource.
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewAlreadyExistsError creates a duplicate-resource error.
func NewAlreadyExistsError(resourceType, name string) error {
	return &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s '%s' already exists", resourceType, name),
		Err:     ErrAlreadyExists,
	}
}

// NewInvalidInputError creates a validation error with a caller-facing message.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewInsufficientCreditError creates a credit-gate error naming the cost.
func NewInsufficientCreditError(cost int) error {
	return &DomainError{
		Code:    "INSUFFICIENT_CREDIT",
		Message: fmt.Sprintf("this operation requires %d credit(s)", cost),
		Err:     ErrInsufficientCredit,
	}
}

// NewInternalError wraps an unexpected error without exposing its detail.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is a duplicate-resource error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidInput reports whether err is a validation error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInsufficientCredit reports whether err is a credit-gate error.
func IsInsufficientCredit(err error) bool {
	return errors.Is(err, ErrInsufficientCredit)
}

// IsBackendUnavailable reports whether err is a generation-backend failure.
func IsBackendUnavailable(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInternalError reports whether err is an internal error.
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
