package errors

import (
	"errors"
	"net/http"

	"sesamebooking/internal/booking"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// FromDomain wraps a booking-core error into the HTTPError returned to
// clients, with the status code from StatusFor.
func FromDomain(err error) *HTTPError {
	return NewHTTPError(StatusFor(err), err.Error())
}

// StatusFor maps the booking error taxonomy to HTTP status codes. All
// of these are recoverable client-side; anything unrecognized is a 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrEmptySelection),
		errors.Is(err, booking.ErrMissingIdentity),
		errors.Is(err, booking.ErrInvalidSlot):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrSlotOccupied):
		return http.StatusConflict
	case errors.Is(err, booking.ErrSlotNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
