package global

import (
	"errors"
	"net/http"
)

// Sentinel errors returned by the stores. The router translates them into
// the wire-level HTTPError at the boundary.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// HTTPError is a request-terminating error carrying the HTTP status to
// answer with. Handlers attach one to the gin context and return; the
// error-handling middleware writes the JSON body.
type HTTPError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func BadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func Internal(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}
