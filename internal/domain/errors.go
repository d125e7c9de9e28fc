package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvariant         = errors.New("domain invariant violated")
	ErrNoEligibleOfficer = errors.New("no eligible officer")
	ErrExternalService   = errors.New("external service failure")
	ErrUnmappedVariant   = errors.New("unmapped variant")
)

// ErrorKind classifies a structured error.
type ErrorKind string

const (
	KindValidation          ErrorKind = "VALIDATION"
	KindAuthorization       ErrorKind = "AUTHORIZATION"
	KindConcurrencyConflict ErrorKind = "CONCURRENCY_CONFLICT"
	KindDomainInvariant     ErrorKind = "DOMAIN_INVARIANT"
	KindNoEligibleOfficer   ErrorKind = "NO_ELIGIBLE_OFFICER"
	KindExternalService     ErrorKind = "EXTERNAL_SERVICE"
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindRateLimited         ErrorKind = "RATE_LIMITED"
	KindInternal            ErrorKind = "INTERNAL"
)

func (k ErrorKind) String() string { return string(k) }

// Machine codes carried by structured errors.
const (
	CodeValidation          = "PC-APP-VAL"
	CodeUnauthorized        = "PC-APP-AUTH"
	CodeRateLimited         = "PC-APP-RATE"
	CodeConcurrencyConflict = "PC-APP-CONFLICT"
	CodeServiceCombination  = "PC-DOM-SCNAE"
	CodeCaseNotActive       = "PC-DOM-CSSSUISIAE"
	CodeNoEligibleOfficer   = "PC-DOM-UWMINFE"
	CodeAggregateNotFound   = "PC-DOM-NOAGG"
	CodeTemplateNotFound    = "CH-APP-ADP-INTNFE"
	CodeUnmappedVariant     = "PC-ADP-UNMAPPED"
	CodeCaseRegistryFailure = "PC-EXT-REGISTRY"
	CodeDirectoryFailure    = "PC-EXT-DIRECTORY"
	CodeNotificationFailure = "PC-EXT-NOTIFY"
	CodeTemplateFailure     = "PC-EXT-TEMPLATE"
	CodeInternal            = "PC-APP-INTERNAL"
)

// Error is the structured error returned across the command boundary.
// It unwraps to the sentinel of its kind and to the underlying cause, so
// errors.Is(err, ErrConflict) works for every concurrency conflict.
type Error struct {
	Kind        ErrorKind
	Code        string
	Description string
	Err         error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(" [")
	b.WriteString(e.Code)
	b.WriteString("]: ")
	b.WriteString(e.Description)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := kindSentinel(e.Kind); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func kindSentinel(k ErrorKind) error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindAuthorization:
		return ErrForbidden
	case KindConcurrencyConflict:
		return ErrConflict
	case KindDomainInvariant:
		return ErrInvariant
	case KindNoEligibleOfficer:
		return ErrNoEligibleOfficer
	case KindExternalService:
		return ErrExternalService
	case KindNotFound:
		return ErrNotFound
	}
	return nil
}

// NewAuthorizationError reports a caller that may not run the command.
func NewAuthorizationError(description string) *Error {
	return &Error{Kind: KindAuthorization, Code: CodeUnauthorized, Description: description}
}

// NewConcurrencyConflictError reports a lost optimistic race on the aggregate.
func NewConcurrencyConflictError(aggregateID string, expectedVersion int) *Error {
	return &Error{
		Kind:        KindConcurrencyConflict,
		Code:        CodeConcurrencyConflict,
		Description: fmt.Sprintf("pre-consultation %s is no longer at version %d, resubmit the command", aggregateID, expectedVersion),
	}
}

// NewInvariantError reports a violated business rule.
func NewInvariantError(code, description string) *Error {
	return &Error{Kind: KindDomainInvariant, Code: code, Description: description}
}

// NewNoEligibleOfficerError reports an empty candidate pool.
func NewNoEligibleOfficerError(role string) *Error {
	return &Error{
		Kind:        KindNoEligibleOfficer,
		Code:        CodeNoEligibleOfficer,
		Description: fmt.Sprintf("no eligible user found for role %s", role),
	}
}

// NewExternalServiceError wraps a failed collaborator call.
func NewExternalServiceError(code, service string, cause error) *Error {
	return &Error{
		Kind:        KindExternalService,
		Code:        code,
		Description: service + " call failed",
		Err:         cause,
	}
}

// NewNotFoundError reports a missing aggregate or record.
func NewNotFoundError(code, description string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Description: description}
}

// AsError converts any error into a structured *Error. Validation errors
// become KindValidation, sentinel-only errors take the matching kind, and
// everything else is KindInternal with the cause kept for logging.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		return de
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return &Error{Kind: KindValidation, Code: CodeValidation, Description: ve.Error(), Err: ve}
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return &Error{Kind: KindNotFound, Code: CodeAggregateNotFound, Description: "not found", Err: err}
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyExists):
		return &Error{Kind: KindConcurrencyConflict, Code: CodeConcurrencyConflict, Description: "conflicting write", Err: err}
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return &Error{Kind: KindAuthorization, Code: CodeUnauthorized, Description: "not authorized", Err: err}
	case errors.Is(err, ErrValidation):
		return &Error{Kind: KindValidation, Code: CodeValidation, Description: "invalid request", Err: err}
	}

	return &Error{Kind: KindInternal, Code: CodeInternal, Description: "internal error", Err: err}
}

// UnmappedVariantError is returned by the storage mapper when a tag has no
// mapping in either direction.
type UnmappedVariantError struct {
	Union string
	Tag   string
}

func (e *UnmappedVariantError) Error() string {
	return fmt.Sprintf("unmapped %s variant %q", e.Union, e.Tag)
}

func (e *UnmappedVariantError) Unwrap() error { return ErrUnmappedVariant }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
