package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found (or is soft-deleted).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates the operation clashes with the current state, e.g. deleting
// a category that movements still reference.
var ErrConflict = errors.New("conflict with current state")

// ErrStore indicates a failure of the underlying store (I/O, network, quota).
var ErrStore = errors.New("store error")

// ErrUnauthorized indicates a missing or invalid caller identity.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-equivalent code and a caller-facing message while still
// matching the sentinel it wraps through errors.Is.
type AppError struct {
	Code    int
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with the given code and message wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports a field-level validation failure.
func NewValidationError(field, message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Field: field, Message: message, Err: ErrValidation}
}

// NewNotFoundError reports a missing or soft-deleted entity.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError reports a referential or state conflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewStoreError wraps a store failure for operation op. The original error stays
// reachable through errors.Is / errors.As.
func NewStoreError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStore, err))
}

// FieldOf returns the offending field name of a validation error, if any.
func FieldOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
