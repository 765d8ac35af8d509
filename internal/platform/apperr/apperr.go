// Package apperr defines the error taxonomy shared by all domain handlers:
// validation failures (400), missing aggregate roots (404), and unresolvable
// secondary references (400). Anything outside the taxonomy is treated as a
// store error and surfaced as a 500 with a caller-supplied generic message.
package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError.
func Validation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// NotFoundError reports that the aggregate root of the request (e.g. the
// patient in a /patients/:id route) does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound builds a NotFoundError.
func NotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// ReferenceNotFoundError reports that a secondary referenced id (e.g.
// provider_id on patient create) does not resolve. Responds 400, not 404:
// the primary subject of the request is fine.
type ReferenceNotFoundError struct {
	Message string
}

func (e *ReferenceNotFoundError) Error() string { return e.Message }

// ReferenceNotFound builds a ReferenceNotFoundError.
func ReferenceNotFound(msg string) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Message: msg}
}

// Status returns the HTTP status for a taxonomy error, or 500 for anything
// outside the taxonomy.
func Status(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	var rnf *ReferenceNotFoundError
	switch {
	case errors.As(err, &ve), errors.As(err, &rnf):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes the error as a {"error": "..."} body. Taxonomy errors keep
// their message; everything else gets the generic fallback so store detail
// never leaks to the caller.
func JSON(c echo.Context, err error, fallback string) error {
	code := Status(err)
	msg := fallback
	if code != http.StatusInternalServerError {
		msg = err.Error()
	}
	return c.JSON(code, map[string]string{"error": msg})
}
