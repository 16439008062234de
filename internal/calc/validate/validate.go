// Package validate range-checks calculator inputs before they reach the
// calculation engine. Checks accumulate so a caller sees every bad field
// at once, and soft problems are reported as warnings instead of errors.
package validate

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalidInput is matched by every *Error via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates field errors.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, ", ")
}

// Is reports ErrInvalidInput as a match.
func (e *Error) Is(target error) bool { return target == ErrInvalidInput }

// Checker collects field errors and warnings.
type Checker struct {
	fields   []FieldError
	warnings []string
}

// Range requires lo <= v <= hi.
func (c *Checker) Range(field string, v, lo, hi float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
		c.Fail(field, fmt.Sprintf("must be between %g and %g", lo, hi))
	}
}

// Optional is Range for fields where 0 means "not supplied".
func (c *Checker) Optional(field string, v, lo, hi float64) {
	if v == 0 {
		return
	}
	c.Range(field, v, lo, hi)
}

// OneOf requires v to be one of allowed.
func (c *Checker) OneOf(field, v string, allowed ...string) {
	if !slices.Contains(allowed, v) {
		c.Fail(field, "must be one of "+strings.Join(allowed, ", "))
	}
}

// OptionalOneOf is OneOf for fields where "" means "not supplied".
func (c *Checker) OptionalOneOf(field, v string, allowed ...string) {
	if v == "" {
		return
	}
	c.OneOf(field, v, allowed...)
}

// Fail records a field error.
func (c *Checker) Fail(field, msg string) {
	c.fields = append(c.fields, FieldError{Field: field, Message: msg})
}

// Warn records a non-blocking warning.
func (c *Checker) Warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Result returns the warnings and, if any field failed, an *Error.
func (c *Checker) Result() ([]string, error) {
	if len(c.fields) > 0 {
		return c.warnings, &Error{Fields: c.fields}
	}
	return c.warnings, nil
}
