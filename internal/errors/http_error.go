package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental/internal/repository"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
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

// FromDomain maps the inventory's business errors onto HTTP status codes.
// An exhausted fleet is an expected outcome and reported as a conflict,
// not a server failure.
func FromDomain(err error) *HTTPError {
	switch {
	case errors.Is(err, repository.ErrInvalidDuration),
		errors.Is(err, repository.ErrPastStartDate):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNoAvailableCars):
		return NewHTTPError(http.StatusConflict, err.Error())
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}

// WriteJSON sends the error as a {"error": ...} envelope.
func WriteJSON(w http.ResponseWriter, httpErr *HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(httpErr)
}
