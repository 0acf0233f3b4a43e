package site

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when a config file does not match the expected
	// configuration shape, e.g. a misnamed field.
	ErrShape = errors.New("config does not match the site configuration shape")

	ErrMissingField      = errors.New("required field is empty")
	ErrMalformedBasePath = errors.New("malformed base path")
	ErrEmptySection      = errors.New("sidebar section has no items")
	ErrInvalidURL        = errors.New("not an absolute URL")
	ErrUnknownIcon       = errors.New("unknown icon")
)

// FieldError is a validation error for a single field, identified by its
// path in the configuration, e.g. theme.sidebarSections[1].basePath.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErrorf(field string, sentinel error, format string, args ...any) *FieldError {
	if format == "" {
		return &FieldError{Field: field, Err: sentinel}
	}
	return &FieldError{Field: field, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}
