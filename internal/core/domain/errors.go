package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrApplicatieNotFound = errors.New("applicatie not found")
	ErrApplicatieExists   = errors.New("applicatie already exists")
	// ErrDuplicate is returned by repositories when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate key")
)

// NonFieldErrors is the field name used for object-level validation errors.
const NonFieldErrors = "nonFieldErrors"

// Validation error codes shared between the service layer and the API surface.
const (
	CodeRequired                = "required"
	CodeInvalid                 = "invalid"
	CodeInvalidChoice           = "invalid_choice"
	CodeUnique                  = "unique"
	CodeDoesNotExist            = "does_not_exist"
	CodeBadURL                  = "bad-url"
	CodeInvalidResource         = "invalid-resource"
	CodeUnknownParameters       = "unknown-parameters"
	CodeInvalidSubject          = "invalid-subject"
	CodeInvalidMedewerker       = "invalid-medewerker"
	CodeInvalidProduct          = "invalid-product"
	CodeImmutable               = "wijzigen-niet-toegelaten"
	CodeIdentificatieNotUnique  = "identificatie-niet-uniek"
	CodeInconsistentRelation    = "inconsistent-relation"
	CodeRemoteRelationExists    = "remote-relation-exists"
	CodeRelationValidationError = "relation-validation-error"
	CodeRelationLookupError     = "relation-lookup-error"
	CodeSyncWithZRC             = "sync-with-zrc"
	CodeSyncWithDRC             = "sync-with-drc"
)

// FieldError is a single machine readable validation failure.
type FieldError struct {
	Field  string
	Code   string
	Reason string
}

// ValidationError collects one or more FieldErrors. It is rendered as a 400.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Code+" ("+fe.Reason+")")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *ValidationError) Add(field, code, reason string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Code: code, Reason: reason})
}

// OrNil returns e when it holds at least one error, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a ValidationError with a single entry.
func NewValidationError(field, code, reason string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Code: code, Reason: reason}}}
}

// NonFieldError builds an object-level ValidationError.
func NonFieldError(code, reason string) *ValidationError {
	return NewValidationError(NonFieldErrors, code, reason)
}

// HasCode reports whether err is a ValidationError carrying code.
func HasCode(err error, code string) bool {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	for _, fe := range ve.Errors {
		if fe.Code == code {
			return true
		}
	}
	return false
}
