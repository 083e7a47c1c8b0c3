package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrSessionExpired is returned when a privileged action runs without a backend token.
	ErrSessionExpired = errors.New("session expired")
	// ErrMissingCredentials is returned when a login form has an empty field.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials is returned when the backend rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden is returned when the session role may not use a page.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when the backend has no such record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidInput is returned when a form fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBackendUnavailable is returned when the clinic backend cannot be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrSaveFailed is returned when the backend refuses a create or delete.
	ErrSaveFailed = errors.New("save failed")
)

// UserMessage is the text shown to a person for err. Errors carrying their own
// message (a *MessageError) show it; known sentinels get a fixed sentence.
func UserMessage(err error) string {
	var msgErr *MessageError
	if errors.As(err, &msgErr) && msgErr.Message != "" {
		return msgErr.Message
	}
	switch {
	case errors.Is(err, ErrSessionExpired):
		return "Session expired or invalid. Please log in again."
	case errors.Is(err, ErrMissingCredentials):
		return "Please fill in all fields."
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials."
	case errors.Is(err, ErrForbidden):
		return "You are not allowed to view that page."
	case errors.Is(err, ErrNotFound):
		return "Not found."
	case errors.Is(err, ErrInvalidDate):
		return "Please pick a valid date."
	case errors.Is(err, ErrInvalidInput):
		return "Please check the form and try again."
	case errors.Is(err, ErrSaveFailed):
		return "The change could not be saved."
	case errors.Is(err, ErrBackendUnavailable):
		return "The clinic service is unavailable. Try again later."
	}
	return "Something went wrong. Try again later."
}

// MessageError attaches a user facing message to a sentinel.
type MessageError struct {
	Err     error
	Message string
}

// WithMessage wraps err with the message a person should see.
func WithMessage(err error, message string) error {
	return &MessageError{Err: err, Message: message}
}

func (e *MessageError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors for the JSON API.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrSessionExpired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "SESSION_EXPIRED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_CREDENTIALS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrSaveFailed):
		return NewHTTPError(http.StatusBadGateway, UserMessage(err), "SAVE_FAILED")
	case errors.Is(err, ErrBackendUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "BACKEND_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
