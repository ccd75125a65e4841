package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidState   = errors.New("invalid state")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Not found errors. Records owned by someone else resolve to these too.
var (
	ErrUserNotFound        = fmt.Errorf("user: %w", ErrNotFound)
	ErrCareerNotFound      = fmt.Errorf("career: %w", ErrNotFound)
	ErrCertificateNotFound = fmt.Errorf("certificate request: %w", ErrNotFound)
	ErrDocumentNotFound    = fmt.Errorf("document: %w", ErrNotFound)
	ErrNoticeNotFound      = fmt.Errorf("notice: %w", ErrNotFound)
	ErrObjectNotFound      = fmt.Errorf("stored object: %w", ErrNotFound)
)

// Career errors
var (
	ErrCareerNotApproved       = fmt.Errorf("career is not approved: %w", ErrForbidden)
	ErrCareerLocked            = fmt.Errorf("approved career cannot be modified: %w", ErrForbidden)
	ErrCareerReferenced        = fmt.Errorf("career has certificate requests: %w", ErrForbidden)
	ErrInvalidStatusTransition = fmt.Errorf("career status transition: %w", ErrInvalidState)
)

// Certificate errors
var (
	ErrCertificateNotPending      = fmt.Errorf("certificate request is not pending: %w", ErrInvalidState)
	ErrCertificateNotIssued       = fmt.Errorf("certificate has not been issued: %w", ErrInvalidState)
	ErrDuplicateCertificateNumber = fmt.Errorf("certificate number: %w", ErrDuplicateEntry)
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation, not just the first.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// NewValidationError creates an empty validation error to collect into.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a failed field. A field is reported once.
func (e *ValidationError) Add(field, message string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has reports whether field was recorded.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil when nothing was collected.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid builds a single-field validation error.
func Invalid(field, message string) error {
	v := NewValidationError()
	v.Add(field, message)
	return v
}
