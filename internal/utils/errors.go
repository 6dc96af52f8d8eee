package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrNotFound           = errors.New("not_found")
	ErrBackendUnreachable = errors.New("backend_unreachable")
	ErrMalformedResponse  = errors.New("malformed_response")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrValidation         = errors.New("validation_error")

	// For external service failures (SendGrid, OpenAI)
	ErrExternalServiceFailure = errors.New("external_service_failure")
)

// AppError carries a failure from the service layer to the controllers
// together with the HTTP status and public error code to respond with.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError wrapping an optional cause.
func NewAppError(status int, code, message string, cause error) *AppError {
	return &AppError{StatusCode: status, Code: code, Message: message, Err: cause}
}

// ValidationError is the common case: a caller-supplied record failed a
// field constraint before it ever reached the store.
func ValidationError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, ErrCodeValidation, message, ErrValidation)
}

// NotFoundError for an absent update/delete target.
func NotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, ErrCodeNotFound, message, ErrNotFound)
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
		return
	}

	// Storage sentinels that escaped the service layer still map to
	// their canonical codes rather than a blanket 500.
	switch {
	case errors.Is(err, ErrNotFound):
		RespondErrorWithCode(w, http.StatusNotFound, ErrCodeNotFound, "Record not found", nil, err)
	case errors.Is(err, ErrBackendUnreachable):
		RespondErrorWithCode(w, http.StatusBadGateway, ErrCodeBackendUnreachable, "Storage backend unreachable", nil, err)
	case errors.Is(err, ErrMalformedResponse):
		RespondErrorWithCode(w, http.StatusBadGateway, ErrCodeMalformedResponse, "Storage backend returned malformed data", nil, err)
	default:
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
