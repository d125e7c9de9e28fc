// Package pipeline runs a command against the pre-consultation aggregate.
//
// Every command goes through the same steps: schema validation, the
// idempotency check, authorization, event creation, Apply and a
// version-checked save. The idempotency and authorization policies and the
// event creator are supplied per command when the Handler is built.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Command is an inbound request to change the aggregate.
type Command interface {
	// CommandName is recorded in the audit history.
	CommandName() string
	// Validate checks the command shape without any I/O.
	Validate() error
	// AggregateID is the targeted aggregate, or uuid.Nil for a creation command.
	AggregateID() uuid.UUID
	// Comments are stored on the audit entry of the resulting event.
	Comments() string
}

// Store loads and persists aggregate snapshots.
type Store interface {
	Load(ctx context.Context, id uuid.UUID) (*domain.PreConsultation, error)
	// Create inserts a new aggregate. It fails with domain.ErrAlreadyExists
	// when the id or the case reference is taken.
	Create(ctx context.Context, p *domain.PreConsultation) error
	// Save replaces the aggregate if it is still at expectedVersion and
	// fails with a concurrency conflict otherwise.
	Save(ctx context.Context, p *domain.PreConsultation, expectedVersion int) error
}

// Request is what the event creator gets to work with.
type Request[C Command] struct {
	Command C
	Caller  domain.Caller
	// Current is nil for creation commands.
	Current *domain.PreConsultation
	// Meta is prefilled with a fresh event id, the target aggregate id, the
	// caller and the command name.
	Meta domain.EventMeta
}

// EventCreator turns a request into the single event it produces.
type EventCreator[C Command] func(ctx context.Context, req Request[C]) (domain.Event, error)

// Steps are the per-command policies of a Handler.
type Steps[C Command] struct {
	Idempotency IdempotencyCheck[C]
	Authorize   Authorizer[C]
	CreateEvent EventCreator[C]
	// Now defaults to time.Now.
	Now func() time.Time
}

// Result is the outcome of a successful command.
type Result struct {
	Aggregate *domain.PreConsultation
	// Event is nil when the command had already been processed.
	Event            domain.Event
	AlreadyProcessed bool
}

// Handler executes one kind of command.
type Handler[C Command] struct {
	store Store
	steps Steps[C]
	log   *slog.Logger
}

// NewHandler builds a Handler. A nil idempotency check means the command is
// inherently idempotent; a nil authorizer rejects every caller.
func NewHandler[C Command](log *slog.Logger, store Store, steps Steps[C]) *Handler[C] {
	if steps.Idempotency == nil {
		steps.Idempotency = InherentlyIdempotent[C]()
	}
	if steps.Authorize == nil {
		steps.Authorize = DenyAll[C]()
	}
	if steps.Now == nil {
		steps.Now = time.Now
	}
	return &Handler[C]{
		store: store,
		steps: steps,
		log:   log.With("component", "pipeline"),
	}
}

// Execute runs cmd on behalf of caller. Any returned error is a
// *domain.Error.
func (h *Handler[C]) Execute(ctx context.Context, cmd C, caller domain.Caller) (Result, error) {
	res, err := h.execute(ctx, cmd, caller)
	if err != nil {
		h.logFailure(ctx, cmd, err)
		return Result{}, domain.AsError(err)
	}
	return res, nil
}

func (h *Handler[C]) execute(ctx context.Context, cmd C, caller domain.Caller) (Result, error) {
	name := cmd.CommandName()

	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	var current *domain.PreConsultation
	if id := cmd.AggregateID(); id != uuid.Nil {
		loaded, err := h.store.Load(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return Result{}, domain.NewNotFoundError(domain.CodeAggregateNotFound,
					fmt.Sprintf("pre-consultation %s does not exist", id))
			}
			return Result{}, fmt.Errorf("%s: load aggregate: %w", name, err)
		}
		current = loaded
	}

	decision, err := h.steps.Idempotency(ctx, cmd, current)
	if err != nil {
		return Result{}, fmt.Errorf("%s: idempotency check: %w", name, err)
	}
	if !decision.Proceed {
		return h.alreadyProcessed(ctx, name, decision.Existing), nil
	}

	if err := h.steps.Authorize(ctx, caller, cmd, current); err != nil {
		return Result{}, err
	}

	meta, err := h.meta(cmd, caller, current)
	if err != nil {
		return Result{}, err
	}

	event, err := h.steps.CreateEvent(ctx, Request[C]{Command: cmd, Caller: caller, Current: current, Meta: meta})
	if err != nil {
		return Result{}, err
	}

	next, err := domain.Apply(current, event)
	if err != nil {
		return Result{}, err
	}

	if current == nil {
		if err := h.store.Create(ctx, next); err != nil {
			// A concurrent creation won; report it the way a resubmission is.
			if errors.Is(err, domain.ErrAlreadyExists) {
				if d, derr := h.steps.Idempotency(ctx, cmd, nil); derr == nil && !d.Proceed {
					return h.alreadyProcessed(ctx, name, d.Existing), nil
				}
			}
			return Result{}, fmt.Errorf("%s: create aggregate: %w", name, err)
		}
	} else {
		if err := h.store.Save(ctx, next, current.Version); err != nil {
			return Result{}, fmt.Errorf("%s: save aggregate: %w", name, err)
		}
	}

	h.log.InfoContext(ctx, "command processed",
		slog.String("command", name),
		slog.String("event", event.Name().String()),
		slog.String("aggregate_id", next.ID.String()),
		slog.Int("version", next.Version),
	)

	return Result{Aggregate: next, Event: event}, nil
}

func (h *Handler[C]) alreadyProcessed(ctx context.Context, name string, existing *domain.PreConsultation) Result {
	h.log.WarnContext(ctx, "command already processed",
		slog.String("command", name),
		slog.String("aggregate_id", existing.ID.String()),
		slog.Int("version", existing.Version),
	)
	return Result{Aggregate: existing, AlreadyProcessed: true}
}

func (h *Handler[C]) meta(cmd C, caller domain.Caller, current *domain.PreConsultation) (domain.EventMeta, error) {
	eventID, err := uuid.NewV7()
	if err != nil {
		return domain.EventMeta{}, fmt.Errorf("generate event id: %w", err)
	}

	aggregateID := cmd.AggregateID()
	if current == nil {
		aggregateID, err = uuid.NewV7()
		if err != nil {
			return domain.EventMeta{}, fmt.Errorf("generate aggregate id: %w", err)
		}
	}

	return domain.EventMeta{
		ID:          eventID,
		AggregateID: aggregateID,
		CreatedBy:   caller.UserID,
		CreatedAt:   h.steps.Now().UTC(),
		CommandName: cmd.CommandName(),
		Comments:    cmd.Comments(),
	}, nil
}

func (h *Handler[C]) logFailure(ctx context.Context, cmd C, err error) {
	attrs := []any{
		slog.String("command", cmd.CommandName()),
		slog.String("error", err.Error()),
	}
	if id := cmd.AggregateID(); id != uuid.Nil {
		attrs = append(attrs, slog.String("aggregate_id", id.String()))
	}

	switch {
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		h.log.WarnContext(ctx, "concurrency conflict", attrs...)
	case errors.Is(err, domain.ErrExternalService):
		h.log.ErrorContext(ctx, "external service failure", attrs...)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrInvariant), errors.Is(err, domain.ErrNoEligibleOfficer),
		errors.Is(err, domain.ErrNotFound):
		h.log.InfoContext(ctx, "command rejected", attrs...)
	default:
		h.log.ErrorContext(ctx, "command failed", attrs...)
	}
}
