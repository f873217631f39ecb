// Package errors provides sentinel errors, structured error details and exit
// codes for the umdwrap CLI.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ReadError is returned when a referenced file cannot be located or read.
// It matches ErrRead with errors.Is and exposes the OS error via Err.
type ReadError struct {
	// Path is the file that failed to read.
	Path string

	// Err is the underlying I/O error.
	Err error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying I/O error.
func (e *ReadError) Unwrap() []error {
	return []error{ErrRead, e.Err}
}

// NewReadError creates a ReadError for path.
func NewReadError(path string, err error) error {
	return &ReadError{Path: path, Err: err}
}

// NewTemplateNotFoundError creates a template-not-found error with details.
func NewTemplateNotFoundError(selector string, bundled []string) error {
	return &DetailError{
		Type:    "template not found",
		Message: fmt.Sprintf("could not find wrapper template: %s", selector),
		Hint: fmt.Sprintf("Pass a path to a template file or one of the bundled templates: %s",
			strings.Join(bundled, ", ")),
		Cause: ErrTemplateNotFound,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
