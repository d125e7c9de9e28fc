package pipeline

import (
	"context"
	"errors"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Decision is the verdict of an idempotency check.
type Decision struct {
	Proceed bool
	// Existing is the aggregate returned to the caller when Proceed is false.
	Existing *domain.PreConsultation
}

// IdempotencyCheck decides whether cmd has already achieved its effect.
// current is nil for creation commands.
type IdempotencyCheck[C Command] func(ctx context.Context, cmd C, current *domain.PreConsultation) (Decision, error)

// InherentlyIdempotent always proceeds.
func InherentlyIdempotent[C Command]() IdempotencyCheck[C] {
	return func(context.Context, C, *domain.PreConsultation) (Decision, error) {
		return Decision{Proceed: true}, nil
	}
}

// ExistsBy short-circuits when find returns an aggregate. find reports
// absence with domain.ErrNotFound.
func ExistsBy[C Command](find func(ctx context.Context, cmd C) (*domain.PreConsultation, error)) IdempotencyCheck[C] {
	return func(ctx context.Context, cmd C, _ *domain.PreConsultation) (Decision, error) {
		existing, err := find(ctx, cmd)
		if errors.Is(err, domain.ErrNotFound) {
			return Decision{Proceed: true}, nil
		}
		if err != nil {
			return Decision{}, err
		}
		return Decision{Proceed: false, Existing: existing}, nil
	}
}

// Authorizer returns nil when caller may run cmd, or an authorization error
// carrying the reason.
type Authorizer[C Command] func(ctx context.Context, caller domain.Caller, cmd C, current *domain.PreConsultation) error

// DenyAll rejects every caller.
func DenyAll[C Command]() Authorizer[C] {
	return func(context.Context, domain.Caller, C, *domain.PreConsultation) error {
		return domain.NewAuthorizationError("command is not open to any caller")
	}
}

// AdminOnly admits CMO and HMT callers.
func AdminOnly[C Command]() Authorizer[C] {
	return func(_ context.Context, caller domain.Caller, _ C, _ *domain.PreConsultation) error {
		if caller.IsAdmin() {
			return nil
		}
		return domain.NewAuthorizationError("only CMO and HMT users may run this command")
	}
}

// WorkflowOnly admits calls issued by the workflow engine.
func WorkflowOnly[C Command]() Authorizer[C] {
	return func(_ context.Context, caller domain.Caller, _ C, _ *domain.PreConsultation) error {
		if caller.IsWorkflow() {
			return nil
		}
		return domain.NewAuthorizationError("command may only be issued by the workflow")
	}
}

// AnyOf admits the caller if at least one authorizer does. It returns the
// last rejection otherwise.
func AnyOf[C Command](authorizers ...Authorizer[C]) Authorizer[C] {
	return func(ctx context.Context, caller domain.Caller, cmd C, current *domain.PreConsultation) error {
		err := error(domain.NewAuthorizationError("no authorization rule matched"))
		for _, a := range authorizers {
			if err = a(ctx, caller, cmd, current); err == nil {
				return nil
			}
		}
		return err
	}
}
