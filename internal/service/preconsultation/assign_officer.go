package preconsultation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/assignment"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/pipeline"
)

// AssignOfficer assigns the least-loaded officer to the pre-consultation.
func (s *Service) AssignOfficer(ctx context.Context, input AssignOfficerInput) (*CommandResult, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.assign.Execute(ctx, input, caller)
	if err != nil {
		return nil, err
	}
	return toCommandResult(res), nil
}

func (s *Service) createOfficerAssigned(ctx context.Context, req pipeline.Request[AssignOfficerInput]) (domain.Event, error) {
	officer, err := s.selectOfficer(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate assignment id: %w", err)
	}

	return domain.OfficerAssigned{
		EventMeta: req.Meta,
		Assignment: domain.Assignment{
			ID:             id,
			Role:           s.cfg.OfficerRole,
			AssignedUserID: officer,
			AssignedDate:   req.Meta.CreatedAt,
			Mode:           domain.AssignmentAutomatic,
		},
	}, nil
}

// selectOfficer lists the pool from the directory and picks an officer by
// active-case load. The registry is only asked for case statuses when every
// officer already holds at least one case.
func (s *Service) selectOfficer(ctx context.Context) (string, error) {
	role := s.cfg.OfficerRole.String()

	pool, err := s.users.ListUsersByRole(ctx, s.cfg.DirectoryRole)
	if err != nil {
		return "", external(domain.CodeDirectoryFailure, "user directory", err)
	}
	if len(pool) == 0 {
		return "", domain.NewNoEligibleOfficerError(role)
	}

	assignments, err := s.store.ListAssignmentsByRole(ctx, s.cfg.OfficerRole, pool)
	if err != nil {
		return "", fmt.Errorf("list assignments: %w", err)
	}

	var active map[string]bool
	if len(assignment.Unassigned(pool, assignments)) == 0 {
		active, err = s.activeCases(ctx, assignments)
		if err != nil {
			return "", err
		}
	}

	officer, err := assignment.SelectOfficer(role, pool, assignments, active)
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "officer selected",
		slog.String("officer_id", officer),
		slog.Int("pool_size", len(pool)),
		slog.Int("assignments", len(assignments)),
	)
	return officer, nil
}

func (s *Service) activeCases(ctx context.Context, assignments []assignment.ActiveAssignment) (map[string]bool, error) {
	refs := make([]string, 0, len(assignments))
	seen := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		if _, ok := seen[a.CaseReference]; ok {
			continue
		}
		seen[a.CaseReference] = struct{}{}
		refs = append(refs, a.CaseReference)
	}

	activeRefs, err := s.cases.ListActiveCaseReferences(ctx, refs)
	if err != nil {
		return nil, external(domain.CodeCaseRegistryFailure, "case registry", err)
	}

	active := make(map[string]bool, len(activeRefs))
	for _, ref := range activeRefs {
		active[ref] = true
	}
	return active, nil
}
