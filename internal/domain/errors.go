package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrFeatureDisabled = errors.New("feature disabled")

	// ErrAIUnavailable covers every failure of the AI collaborator:
	// network errors, non-2xx responses, malformed model output.
	ErrAIUnavailable = errors.New("ai service unavailable")
	// ErrAITimeout wraps ErrAIUnavailable, so errors.Is matches both.
	ErrAITimeout = fmt.Errorf("ai request timed out: %w", ErrAIUnavailable)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// BadRequestError carries a client-facing message for a request that is
// well-formed JSON but cannot be acted on (bad id, empty update, ...).
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return "bad request: " + e.Message }

func (e *BadRequestError) Unwrap() error { return ErrBadRequest }

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

// AIError describes a failed call to the AI collaborator. Code is a short
// machine-readable classification stored in the generation error log.
type AIError struct {
	Code string
	Err  error
}

func (e *AIError) Error() string { return fmt.Sprintf("ai %s: %v", e.Code, e.Err) }

func (e *AIError) Unwrap() error { return e.Err }

// AI error classification codes.
const (
	AIErrorTimeout       = "timeout"
	AIErrorNetwork       = "network"
	AIErrorUpstream      = "upstream_status"
	AIErrorInvalidOutput = "invalid_output"
)

// NewAIError classifies cause under code. The result matches ErrAIUnavailable
// with errors.Is, and ErrAITimeout as well when code is AIErrorTimeout.
func NewAIError(code string, cause error) *AIError {
	base := ErrAIUnavailable
	if code == AIErrorTimeout {
		base = ErrAITimeout
	}
	return &AIError{Code: code, Err: fmt.Errorf("%w: %v", base, cause)}
}
