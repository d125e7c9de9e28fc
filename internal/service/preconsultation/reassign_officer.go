package preconsultation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/pipeline"
)

// ReassignOfficer replaces the officer of the pre-consultation with the one
// chosen by a CMO or HMT user.
func (s *Service) ReassignOfficer(ctx context.Context, input ReassignOfficerInput) (*CommandResult, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.reassign.Execute(ctx, input, caller)
	if err != nil {
		return nil, err
	}
	return toCommandResult(res), nil
}

func (s *Service) createOfficerReassigned(_ context.Context, req pipeline.Request[ReassignOfficerInput]) (domain.Event, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate assignment id: %w", err)
	}

	ev := domain.OfficerReassigned{
		EventMeta: req.Meta,
		Assignment: domain.Assignment{
			ID:               id,
			Role:             s.cfg.OfficerRole,
			AssignedUserID:   req.Command.OfficerUserID,
			AssignedDate:     req.Meta.CreatedAt,
			Mode:             domain.AssignmentManual,
			AssignedByUserID: req.Meta.CreatedBy,
		},
	}
	if prev, ok := req.Current.Assignment(s.cfg.OfficerRole); ok {
		ev.Previous = &prev
	}
	return ev, nil
}
