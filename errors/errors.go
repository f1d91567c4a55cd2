package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type carried through the application
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

func ErrPermissionDenied(action string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_PERMISSION_DENIED,
		Message:  fmt.Sprintf("Permission denied: %s", action),
	}
}

// Analysis errors

func ErrMissingTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_TRANSCRIPT,
		Message:  "Transcript is required",
	}
}

func ErrConfiguration(setting string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CONFIGURATION,
		Message:  "Service is not configured",
	}.WithDetail("setting", setting)
}

func ErrProviderFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROVIDER_FAILED,
		Message:  "Failed to analyze transcript",
	}
}

func ErrEmptyReply() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EMPTY_REPLY,
		Message:  "Failed to analyze transcript",
	}
}

func ErrMalformedReply(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_MALFORMED_REPLY,
		Message:  "Failed to analyze transcript",
	}
}

// Relay errors

func ErrBackendUnreachable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_BACKEND_UNREACHABLE,
		Message:  "Upstream service unavailable",
	}
}

// Authentication errors

func ErrInvalidCredentials() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_INVALID_CREDENTIALS,
		Message:  "Invalid email or password",
	}
}

func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrSessionExpired() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_SESSION_EXPIRED,
		Message:  "Session has expired",
	}
}
