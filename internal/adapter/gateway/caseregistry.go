package gateway

import (
	"context"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/preconsultation-backend/internal/config"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// CaseRegistry reads external cases (inquiries).
type CaseRegistry struct {
	http *resty.Client
	log  *slog.Logger
}

// NewCaseRegistry creates a case registry client.
func NewCaseRegistry(cfg config.GatewayConfig, logger *slog.Logger) *CaseRegistry {
	log := logger.With("adapter", "case_registry")
	return &CaseRegistry{
		http: newClient(cfg, "case registry", log),
		log:  log,
	}
}

// GetCase returns the case by reference. Returns domain.ErrNotFound on 404.
func (r *CaseRegistry) GetCase(ctx context.Context, caseReference string) (*domain.Case, error) {
	var body caseResponse
	resp, err := r.http.R().
		SetContext(ctx).
		SetPathParam("ref", caseReference).
		SetResult(&body).
		Get("/cases/{ref}")
	if err := checkResponse("case registry: get case", resp, err); err != nil {
		r.log.ErrorContext(ctx, "get case failed", slog.String("case_reference", caseReference), slog.String("error", err.Error()))
		return nil, err
	}

	c := &domain.Case{
		Reference:     body.CaseReference,
		InquiryID:     body.InquiryID,
		Status:        domain.CaseStatus(body.Status),
		CreatorType:   domain.CreatorType(body.CreatorType),
		CreatorUserID: body.CreatorUserID,
		PatientUserID: body.PatientUserID,
		PatientEmail:  body.PatientPrimaryEmail,
	}
	if c.Reference == "" {
		c.Reference = caseReference
	}
	for _, a := range body.AssignedUsers {
		c.AssignedUsers = append(c.AssignedUsers, domain.CaseAssignee{Role: domain.CallerRole(a.Role), UserID: a.UserID})
	}

	r.log.DebugContext(ctx, "case fetched", slog.String("case_reference", caseReference), slog.String("status", body.Status))
	return c, nil
}

// ListActiveCaseReferences returns the subset of refs whose case is active.
func (r *CaseRegistry) ListActiveCaseReferences(ctx context.Context, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	var body caseReferencesJSON
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(caseReferencesJSON{CaseReferences: refs}).
		SetResult(&body).
		Post("/cases/active")
	if err := checkResponse("case registry: list active cases", resp, err); err != nil {
		r.log.ErrorContext(ctx, "list active cases failed", slog.Int("requested", len(refs)), slog.String("error", err.Error()))
		return nil, err
	}
	return body.CaseReferences, nil
}
