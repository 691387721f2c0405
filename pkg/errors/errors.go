package errors

import (
	"fmt"
)

// ParseError represents a dataset decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures column schema and dataset validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CoercionError reports a dataset cell that could not be converted to its column type.
type CoercionError struct {
	Row    int
	Column string
	Value  any
	Err    error
}

// NewCoercionError constructs a CoercionError for the given row index and column key.
func NewCoercionError(row int, column string, value any, err error) error {
	return &CoercionError{Row: row, Column: column, Value: value, Err: err}
}

func (e *CoercionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("coercion error: rows[%d].%s: cannot convert %v: %v", e.Row, e.Column, e.Value, e.Err)
}

// Unwrap exposes the underlying error.
func (e *CoercionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
