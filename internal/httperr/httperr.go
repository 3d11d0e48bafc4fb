// Package httperr holds the error taxonomy shared by all layers and the
// single place where internal failures are mapped to HTTP responses.
package httperr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel failures surfaced by services and middleware.
var (
	// ErrForbidden covers both an ownership check that came back negative and
	// a protected route reached without a principal.
	ErrForbidden = errors.New("forbidden")

	// ErrNothingToUpdate signals a partial update with every field absent.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrMalformedBody signals a request body that could not be decoded.
	ErrMalformedBody = errors.New("malformed or missing request body")
)

// NotFoundError signals that no habit exists under the requested ID.
type NotFoundError struct {
	HabitID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Habit with id %d not found", e.HabitID)
}

// FieldError is one violated constraint on one request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every violated field so the caller sees all of
// them in a single response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	for _, f := range e.Fields {
		b.WriteString(f.Field)
		b.WriteString(" - ")
		b.WriteString(f.Message)
		b.WriteString(";")
	}
	return b.String()
}

// ParamError signals a path or query parameter of the wrong type.
type ParamError struct {
	Param string
	Value string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("Invalid value '%s' for parameter '%s'", e.Value, e.Param)
}
