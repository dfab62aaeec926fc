package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCardNotFound is returned when no gift card has the requested ID.
	ErrCardNotFound = errors.New("gift card not found")
	// ErrInvalidSortOrder is returned when a sort direction is neither asc nor desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
	// ErrInvalidZoom is returned for a zoom percentage that is not a preset.
	ErrInvalidZoom = errors.New("invalid zoom preset")
	// ErrInvalidFocus is returned when a focus location is not a "lat,lon" pair.
	ErrInvalidFocus = errors.New("invalid focus location")
	// ErrUnknownDataSource is returned when the configured record source is not supported.
	ErrUnknownDataSource = errors.New("unknown data source")
)

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

// MapErrorToHTTP maps domain errors, including wrapped ones, to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrCardNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCardNotFound.Error(), "CARD_NOT_FOUND")
	case errors.Is(err, ErrInvalidSortOrder):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidSortOrder.Error(), "INVALID_SORT_ORDER")
	case errors.Is(err, ErrInvalidZoom):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidZoom.Error(), "INVALID_ZOOM")
	case errors.Is(err, ErrInvalidFocus):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidFocus.Error(), "INVALID_FOCUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
