// Package errors provides the application error taxonomy.
// Service-layer failures are returned as *AppError so handlers can render a
// consistent response without leaking driver details to clients.
package errors

import "net/http"

// Kind groups error codes into the three families callers react to.
type Kind string

const (
	KindValidation Kind = "validation"
	KindStorage    Kind = "storage"
	KindAuth       Kind = "auth"
	KindInternal   Kind = "internal"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so a wrapped copy still matches its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation errors. Raised at the entry boundary and never reach the store.
var (
	ErrValidation   = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid transaction data", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", Kind: KindValidation, StatusCode: http.StatusBadRequest}
)

// Storage errors. The operation is treated as not applied.
var (
	ErrStorage             = &AppError{Code: "STORAGE_ERROR", Message: "The data store could not complete the operation", Kind: KindStorage, StatusCode: http.StatusInternalServerError}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", Kind: KindStorage, StatusCode: http.StatusNotFound}
	ErrUserNotFound        = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", Kind: KindStorage, StatusCode: http.StatusNotFound}
)

// Authentication errors. Shown to the user, not logged as faults.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", Kind: KindAuth, StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", Kind: KindAuth, StatusCode: http.StatusUnauthorized}
	ErrUserExists         = &AppError{Code: "USER_EXISTS", Message: "Username already exists", Kind: KindAuth, StatusCode: http.StatusConflict}
)

// ErrInternalServer covers failures outside the taxonomy above.
var ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", Kind: KindInternal, StatusCode: http.StatusInternalServerError}
