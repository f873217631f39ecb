package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrRead indicates a source, include, or template file could not be read.
	ErrRead = errors.New("read error")

	// ErrTemplateNotFound indicates that neither a template file nor a bundled
	// template matches the requested selector.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrValidation indicates invalid input: a malformed project file, an
	// unknown target, or a check-mode output mismatch.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a project file or target was not found.
	ErrNotFound = errors.New("not found")
)
