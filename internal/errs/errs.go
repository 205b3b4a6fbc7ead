// Package errs defines the problem-style error type returned to API clients.
//
// Every error response in the API shares one JSON shape: title, status,
// detail, an optional requestId for correlating with server-side logs, and a
// UTC timestamp. Field names are lowerCamelCase on the wire.
package errs

import (
	"net/http"
	"time"
)

// FieldError is a field-level validation error attached to 400 responses.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Problem is the uniform error body for the API.
//
// It implements the error interface so handlers and middleware can return it
// directly; the error boundary writes it to the client with its own status.
type Problem struct {
	Title     string       `json:"title"`
	Status    int          `json:"status"`
	Detail    string       `json:"detail"`
	RequestID string       `json:"requestId,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func (p *Problem) Error() string {
	return p.Detail
}

// Is reports whether target is also a *Problem, so errors.Is can match on
// the type without comparing fields.
func (p *Problem) Is(target error) bool {
	_, ok := target.(*Problem)
	return ok
}

func newProblem(status int, detail string) *Problem {
	return &Problem{
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

// NewBadRequest creates a 400 Problem, optionally carrying field errors.
func NewBadRequest(detail string, fieldErrors []FieldError) *Problem {
	p := newProblem(http.StatusBadRequest, detail)
	p.Errors = fieldErrors
	return p
}

// NewUnauthorized creates a 401 Problem.
func NewUnauthorized(detail string) *Problem {
	return newProblem(http.StatusUnauthorized, detail)
}

// NewNotFound creates a 404 Problem.
func NewNotFound(detail string) *Problem {
	return newProblem(http.StatusNotFound, detail)
}

// NewConflict creates a 409 Problem.
func NewConflict(detail string) *Problem {
	return newProblem(http.StatusConflict, detail)
}

// NewInternal creates the generic 500 Problem. The detail is fixed so no
// internal failure information leaks to the client; requestID lets support
// correlate the response with the server-side error log.
func NewInternal(requestID string) *Problem {
	p := newProblem(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	p.RequestID = requestID
	return p
}
