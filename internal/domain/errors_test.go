package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("caseReference", "required")

	if got := err.Error(); got != "validation: caseReference: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "caseReference", Message: "required"},
		{Field: "services", Message: "at least one required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnauthorized, ErrForbidden,
		ErrConflict, ErrInvariant, ErrNoEligibleOfficer, ErrExternalService, ErrUnmappedVariant,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}

func TestError_UnwrapsToKindSentinel(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name     string
		err      *Error
		sentinel error
	}{
		{"conflict", NewConcurrencyConflictError("abc", 2), ErrConflict},
		{"authorization", NewAuthorizationError("nope"), ErrForbidden},
		{"invariant", NewInvariantError(CodeServiceCombination, "bad combo"), ErrInvariant},
		{"no officer", NewNoEligibleOfficerError("MO"), ErrNoEligibleOfficer},
		{"external", NewExternalServiceError(CodeDirectoryFailure, "directory", cause), ErrExternalService},
		{"not found", NewNotFoundError(CodeAggregateNotFound, "missing"), ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("command: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
		})
	}
}

func TestError_KeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("timeout")
	err := NewExternalServiceError(CodeCaseRegistryFailure, "case registry", cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false")
	}
	if got := err.Error(); got != "EXTERNAL_SERVICE [PC-EXT-REGISTRY]: case registry call failed: timeout" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestAsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		kind ErrorKind
		code string
	}{
		{"structured passes through", NewNoEligibleOfficerError("MO"), KindNoEligibleOfficer, CodeNoEligibleOfficer},
		{"wrapped structured", fmt.Errorf("x: %w", NewAuthorizationError("no")), KindAuthorization, CodeUnauthorized},
		{"validation", NewValidationError("services", "required"), KindValidation, CodeValidation},
		{"not found sentinel", fmt.Errorf("row: %w", ErrNotFound), KindNotFound, CodeAggregateNotFound},
		{"already exists sentinel", fmt.Errorf("insert: %w", ErrAlreadyExists), KindConcurrencyConflict, CodeConcurrencyConflict},
		{"unknown", errors.New("boom"), KindInternal, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AsError(tt.err)
			if got.Kind != tt.kind || got.Code != tt.code {
				t.Fatalf("AsError() = %s/%s, want %s/%s", got.Kind, got.Code, tt.kind, tt.code)
			}
		})
	}

	if AsError(nil) != nil {
		t.Fatal("AsError(nil) should be nil")
	}
}

func TestUnmappedVariantError(t *testing.T) {
	t.Parallel()

	err := &UnmappedVariantError{Union: "slide type", Tag: "FROZEN"}
	if !errors.Is(err, ErrUnmappedVariant) {
		t.Fatal("errors.Is(err, ErrUnmappedVariant) = false")
	}
	if got := err.Error(); got != `unmapped slide type variant "FROZEN"` {
		t.Fatalf("unexpected Error(): %q", got)
	}
}
