// Package errors provides application-level error types and utilities.
// It defines the error kinds surfaced by the permission write path: validation,
// not found, conflict, and the backend failures of the store, broker and search index.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeInternal   ErrorType = "internal_error"
	ErrorTypeBadRequest ErrorType = "bad_request"
	ErrorTypePublish    ErrorType = "publish_error"
	ErrorTypeIndex      ErrorType = "index_error"
	ErrorTypeStorage    ErrorType = "storage_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`

	cause error
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying driver or transport error, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error and returns the same AppError.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error.
// Raised when a write violates a uniqueness or referential constraint.
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewPublishError wraps a message broker failure.
func NewPublishError(message string, cause error) *AppError {
	return newAppError(ErrorTypePublish, http.StatusBadGateway, message, nil).WithCause(cause)
}

// NewIndexError wraps a search index failure.
func NewIndexError(message string, cause error) *AppError {
	return newAppError(ErrorTypeIndex, http.StatusBadGateway, message, nil).WithCause(cause)
}

// NewStorageError wraps a relational store failure that is not a constraint violation.
func NewStorageError(message string, cause error) *AppError {
	return newAppError(ErrorTypeStorage, http.StatusInternalServerError, message, nil).WithCause(cause)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// TypeOf returns the ErrorType of err, or ErrorTypeInternal for foreign errors.
func TypeOf(err error) ErrorType {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Type
	}
	return ErrorTypeInternal
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool { return isType(err, ErrorTypeConflict) }

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

func IsPublishError(err error) bool { return isType(err, ErrorTypePublish) }

func IsIndexError(err error) bool { return isType(err, ErrorTypeIndex) }

func IsStorageError(err error) bool { return isType(err, ErrorTypeStorage) }

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// SQL Server
	if strings.Contains(errStr, "Violation of PRIMARY KEY constraint") || strings.Contains(errStr, "Cannot insert duplicate key") {
		return true
	}
	return false
}

// IsForeignKeyError checks if the error is a database referential integrity error
func IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "a foreign key constraint fails") || // MySQL
		strings.Contains(errStr, "violates foreign key constraint") || // PostgreSQL
		strings.Contains(errStr, "FOREIGN KEY constraint failed") || // SQLite
		strings.Contains(errStr, "conflicted with the FOREIGN KEY constraint") // SQL Server
}
