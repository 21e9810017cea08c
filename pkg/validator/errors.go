package validator

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorCode is the application error code carried by ValidationError
// unless overridden with WithErrorCode.
const DefaultErrorCode = 10000

// Package-level sentinels. Typed errors below unwrap to one of them so callers
// can use errors.Is without knowing the concrete type.
var (
	// ErrSpecification is returned when a rule declaration is malformed.
	ErrSpecification = errors.New("invalid rule specification")

	// ErrUnknownRule is returned when a rule kind has no predicate and is not a function.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrMissingParams is returned when a rule kind that needs parameters has none.
	ErrMissingParams = errors.New("validation rule is missing parameters")

	// ErrValidation is the sentinel behind every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrConcurrentCheck is returned when Check is entered while another Check
	// on the same Validator is still running.
	ErrConcurrentCheck = errors.New("validator is already running a check")
)

// SpecificationError describes a malformed rule declaration. It is fatal and
// should surface at startup or first use.
type SpecificationError struct {
	Field  string
	Reason string
}

func (e *SpecificationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrSpecification, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrSpecification, e.Field, e.Reason)
}

func (e *SpecificationError) Unwrap() error { return ErrSpecification }

// UnknownRuleError names a rule kind that resolved to no predicate.
type UnknownRuleError struct {
	Kind string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownRule, e.Kind)
}

func (e *UnknownRuleError) Unwrap() error { return ErrUnknownRule }

func missingParams(kind string) error {
	return fmt.Errorf("%w: %s", ErrMissingParams, kind)
}

// ValidationError is raised when the failure policy mandates throwing. It is
// the only error kind meant to reach end users.
type ValidationError struct {
	// Message is the rendered message of the failure that triggered the error.
	Message string
	// Code is the application error code, DefaultErrorCode unless configured.
	Code int
	// Field is the field whose rule failed first.
	Field string
	// Errors is a snapshot of the accumulator at the time the error was raised.
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return ErrValidation.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StatusCode reports the HTTP status a transport layer should use.
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Has reports whether the snapshot holds errors for field.
func (e *ValidationError) Has(field string) bool {
	return len(e.Errors[field]) > 0
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
