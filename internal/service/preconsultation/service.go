package preconsultation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/preconsultation-backend/internal/assignment"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/pipeline"
	"github.com/heartmarshall/preconsultation-backend/pkg/ctxutil"
)

type aggregateStore interface {
	pipeline.Store
	FindByCaseReference(ctx context.Context, caseReference string) (*domain.PreConsultation, error)
	ListByInquiryIDs(ctx context.Context, inquiryIDs []string) ([]*domain.PreConsultation, error)
	ListAssignmentsByRole(ctx context.Context, role domain.AssignmentRole, userIDs []string) ([]assignment.ActiveAssignment, error)
}

type caseRegistry interface {
	GetCase(ctx context.Context, caseReference string) (*domain.Case, error)
	ListActiveCaseReferences(ctx context.Context, caseReferences []string) ([]string, error)
}

type userDirectory interface {
	ListUsersByRole(ctx context.Context, role string) ([]string, error)
}

type notifier interface {
	Send(ctx context.Context, req domain.NotificationRequest) (string, error)
}

type templateSource interface {
	GetTemplate(ctx context.Context, t domain.NotificationType) (*domain.NotificationTemplate, error)
}

// Config holds the assignment roles.
type Config struct {
	// OfficerRole keys the assignment on the aggregate.
	OfficerRole domain.AssignmentRole
	// DirectoryRole is the IAM role listed to build the officer pool.
	DirectoryRole string
}

// Service runs pre-consultation commands and queries.
type Service struct {
	store     aggregateStore
	cases     caseRegistry
	users     userDirectory
	notify    notifier
	templates templateSource
	cfg       Config
	log       *slog.Logger

	submit   *pipeline.Handler[SubmitServiceSelectionInput]
	assign   *pipeline.Handler[AssignOfficerInput]
	reassign *pipeline.Handler[ReassignOfficerInput]
	notifyPt *pipeline.Handler[NotifyPatientInput]
}

// NewService creates a new PreConsultation service and wires one pipeline
// handler per command.
func NewService(
	log *slog.Logger,
	store aggregateStore,
	cases caseRegistry,
	users userDirectory,
	notify notifier,
	templates templateSource,
	cfg Config,
) *Service {
	if cfg.OfficerRole == "" {
		cfg.OfficerRole = domain.RoleReviewingOfficer
	}
	if cfg.DirectoryRole == "" {
		cfg.DirectoryRole = string(domain.CallerMO)
	}

	s := &Service{
		store:     store,
		cases:     cases,
		users:     users,
		notify:    notify,
		templates: templates,
		cfg:       cfg,
		log:       log.With("service", "preconsultation"),
	}

	s.submit = pipeline.NewHandler(s.log, store, pipeline.Steps[SubmitServiceSelectionInput]{
		Idempotency: pipeline.ExistsBy(s.findByCaseReference),
		Authorize:   s.authorizeSubmit,
		CreateEvent: s.createServiceSelectionSubmitted,
	})
	s.assign = pipeline.NewHandler(s.log, store, pipeline.Steps[AssignOfficerInput]{
		Idempotency: pipeline.InherentlyIdempotent[AssignOfficerInput](),
		Authorize:   pipeline.AnyOf(pipeline.WorkflowOnly[AssignOfficerInput](), pipeline.AdminOnly[AssignOfficerInput]()),
		CreateEvent: s.createOfficerAssigned,
	})
	s.reassign = pipeline.NewHandler(s.log, store, pipeline.Steps[ReassignOfficerInput]{
		Idempotency: pipeline.InherentlyIdempotent[ReassignOfficerInput](),
		Authorize:   pipeline.AdminOnly[ReassignOfficerInput](),
		CreateEvent: s.createOfficerReassigned,
	})
	s.notifyPt = pipeline.NewHandler(s.log, store, pipeline.Steps[NotifyPatientInput]{
		Idempotency: pipeline.InherentlyIdempotent[NotifyPatientInput](),
		Authorize:   pipeline.WorkflowOnly[NotifyPatientInput](),
		CreateEvent: s.createPatientNotified,
	})

	return s
}

// CommandResult is returned by every command.
type CommandResult struct {
	PreConsultation  *domain.PreConsultation
	AlreadyProcessed bool
}

func toCommandResult(res pipeline.Result) *CommandResult {
	return &CommandResult{PreConsultation: res.Aggregate, AlreadyProcessed: res.AlreadyProcessed}
}

// callerFromCtx returns the authenticated caller stored by the auth middleware.
func callerFromCtx(ctx context.Context) (domain.Caller, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok || id.UserID == "" {
		return domain.Caller{}, domain.AsError(domain.ErrUnauthorized)
	}
	return domain.Caller{
		UserID: id.UserID,
		Role:   domain.CallerRole(id.Role),
		Source: domain.CallerSource(id.Source),
	}, nil
}

// external wraps a collaborator failure unless it is already structured.
func external(code, service string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	return domain.NewExternalServiceError(code, service, err)
}
