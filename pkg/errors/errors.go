package errors

import (
	"fmt"
)

// ParseError represents user input that could not be read as a value of the
// expected format (a color string, a config file, a stored preference).
type ParseError struct {
	Input   string
	Format  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(input, format string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Input: input, Format: format, Message: message, Err: err}
}

// NewParseErrorAt constructs a ParseError that points at a line of a file.
func NewParseErrorAt(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Input: path, Format: "file", Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Input, e.Line, e.Message)
	}
	if e.Format != "" {
		return fmt.Sprintf("parse error: %q is not a valid %s: %s", e.Input, e.Format, e.Message)
	}
	return fmt.Sprintf("parse error: %q: %s", e.Input, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or model validation issues.
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

// RenderError reports a precondition failure while rasterising or encoding an
// image. It is never retried.
type RenderError struct {
	Operation string
	Err       error
}

// NewRenderError constructs a RenderError.
func NewRenderError(operation string, err error) error {
	return &RenderError{Operation: operation, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Operation != "" {
		return fmt.Sprintf("render error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoreError indicates a failure inside a preference store backend.
type StoreError struct {
	Backend string
	Key     string
	Message string
	Err     error
}

// NewStoreError constructs a StoreError for the given backend and key.
func NewStoreError(backend, key string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StoreError{Backend: backend, Key: key, Message: message, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("store error [%s] key %q: %s", e.Backend, e.Key, e.Message)
	}
	return fmt.Sprintf("store error [%s]: %s", e.Backend, e.Message)
}

// Unwrap exposes the underlying error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
