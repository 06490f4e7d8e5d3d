package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
// Codes are the tags the response mapper matches on; they never reach clients.
type ErrorCode string

const (
	// ErrCodeLoginFail indicates a credentials mismatch on login.
	ErrCodeLoginFail ErrorCode = "login_fail"
	// ErrCodeNoToken indicates the request carried no auth-token cookie.
	ErrCodeNoToken ErrorCode = "auth_no_token"
	// ErrCodeMalformedToken indicates the auth-token cookie could not be parsed.
	ErrCodeMalformedToken ErrorCode = "auth_malformed_token"
	// ErrCodeCtxNotInRequestState indicates a route was wired without the context resolver.
	ErrCodeCtxNotInRequestState ErrorCode = "auth_ctx_not_in_request_state"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (e.g., unique constraint violation).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeConfigMissingEnv indicates a required environment variable was not set.
	ErrCodeConfigMissingEnv ErrorCode = "config_missing_env"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message (server side only)
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// ID is the resource identifier for not-found errors (optional)
	ID *uint64
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// LoginFail creates a new LoginFail error.
func LoginFail() *AppError {
	return &AppError{Code: ErrCodeLoginFail, Message: "login failed"}
}

// NoToken creates the auth failure published when no auth cookie is present.
func NoToken() *AppError {
	return &AppError{Code: ErrCodeNoToken, Message: "no auth token cookie"}
}

// MalformedToken creates the auth failure published when the auth cookie cannot be parsed.
func MalformedToken(cause error) *AppError {
	return &AppError{Code: ErrCodeMalformedToken, Message: "auth token wrong format", Cause: cause}
}

// CtxNotInRequestState creates the wiring error returned when no auth outcome was published.
func CtxNotInRequestState() *AppError {
	return &AppError{Code: ErrCodeCtxNotInRequestState, Message: "ctx not in request state"}
}

// ResourceNotFound creates a NotFound error carrying the missing id.
func ResourceNotFound(id uint64) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("resource %d not found", id),
		ID:      &id,
	}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// ConfigMissingEnv creates the startup error for a missing required variable.
func ConfigMissingEnv(name string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeConfigMissingEnv,
		Message: "missing env " + name,
		Cause:   cause,
	}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// As returns the outermost AppError in err's chain. Errors that are not
// AppErrors are wrapped as Internal so callers always get a tagged value.
func As(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternal, "unhandled error")
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsAuthFailure reports whether err is one of the auth resolution failures.
func IsAuthFailure(err error) bool {
	return isCode(err, ErrCodeNoToken) || isCode(err, ErrCodeMalformedToken)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
