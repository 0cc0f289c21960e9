package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRoomNotFound is returned when a referenced room does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomNotAvailable is returned when a booking targets a room whose
	// status is not available, including a conditional update that matched
	// zero rows because a concurrent booking won the race.
	ErrRoomNotAvailable = errors.New("room is not available")
	// ErrBookingNotFound is returned when a booking does not exist or is
	// not owned by the caller.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrSurveyNotFound is returned when a survey does not exist or is
	// not owned by the caller.
	ErrSurveyNotFound = errors.New("survey not found")
	// ErrUserNotFound is returned when a token resolves to no user record.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse is the JSON body returned on every failure.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
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
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become
// an opaque 500 so store failures never leak detail to clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROOM_NOT_FOUND")
	case errors.Is(err, ErrRoomNotAvailable):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROOM_NOT_AVAILABLE")
	case errors.Is(err, ErrBookingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOKING_NOT_FOUND")
	case errors.Is(err, ErrSurveyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SURVEY_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
