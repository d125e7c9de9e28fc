package preconsultation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/pipeline"
)

// SubmitServiceSelection creates the pre-consultation of a case. A repeated
// submission for the same case returns the stored aggregate unchanged.
func (s *Service) SubmitServiceSelection(ctx context.Context, input SubmitServiceSelectionInput) (*CommandResult, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.submit.Execute(ctx, input, caller)
	if err != nil {
		return nil, err
	}
	return toCommandResult(res), nil
}

func (s *Service) findByCaseReference(ctx context.Context, input SubmitServiceSelectionInput) (*domain.PreConsultation, error) {
	return s.store.FindByCaseReference(ctx, input.CaseReference)
}

// authorizeSubmit admits admins and the workflow outright. A client may
// submit for their own case (the creator when a care giver opened it) and a
// PMC only for a case they are assigned to.
func (s *Service) authorizeSubmit(ctx context.Context, caller domain.Caller, input SubmitServiceSelectionInput, _ *domain.PreConsultation) error {
	if caller.IsAdmin() || caller.IsWorkflow() {
		return nil
	}

	c, err := s.cases.GetCase(ctx, input.CaseReference)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewAuthorizationError(fmt.Sprintf("case %s is not visible to the caller", input.CaseReference))
	}
	if err != nil {
		return external(domain.CodeCaseRegistryFailure, "case registry", err)
	}

	switch caller.Role {
	case domain.CallerClient:
		owner := c.PatientUserID
		if c.CreatorType == domain.CreatorCareGiver {
			owner = c.CreatorUserID
		}
		if owner != "" && owner == caller.UserID {
			return nil
		}
	case domain.CallerPMC:
		if pmc, ok := c.AssignedUser(domain.CallerPMC); ok && pmc == caller.UserID {
			return nil
		}
	}

	s.log.InfoContext(ctx, "submit rejected",
		slog.String("user_id", caller.UserID),
		slog.String("role", caller.Role.String()),
		slog.String("case_reference", input.CaseReference),
	)
	return domain.NewAuthorizationError("caller is not allowed to submit the service selection of this case")
}

func (s *Service) createServiceSelectionSubmitted(ctx context.Context, req pipeline.Request[SubmitServiceSelectionInput]) (domain.Event, error) {
	input := req.Command

	if err := domain.ValidateServiceCombination(input.Services); err != nil {
		return nil, err
	}

	c, err := s.cases.GetCase(ctx, input.CaseReference)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, external(domain.CodeCaseRegistryFailure, "case registry", err)
	}
	if err != nil || !c.IsActive() {
		return nil, domain.NewInvariantError(domain.CodeCaseNotActive,
			"Cannot submit service selection unless inquiry status is active.")
	}

	return domain.ServiceSelectionSubmitted{
		EventMeta:     req.Meta,
		CaseReference: input.CaseReference,
		InquiryID:     input.InquiryID,
		Services:      input.Services,
	}, nil
}
