package preconsultation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// GetPreConsultation returns the aggregate by id.
func (s *Service) GetPreConsultation(ctx context.Context, id uuid.UUID) (*domain.PreConsultation, error) {
	if _, err := callerFromCtx(ctx); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.AsError(domain.NewValidationError("id", "required"))
	}

	p, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, queryError(err, fmt.Sprintf("pre-consultation %s does not exist", id))
	}
	return p, nil
}

// ServiceDetails returns the selected services of the case.
func (s *Service) ServiceDetails(ctx context.Context, caseReference string) (*ServiceDetails, error) {
	p, err := s.byCaseReference(ctx, caseReference)
	if err != nil {
		return nil, err
	}

	details := &ServiceDetails{
		ID:       p.ID,
		Services: domain.ServiceNames(p.Services),
	}
	if c, ok := domain.ConsultationOf(p.Services); ok {
		details.PreferredPhysicianName = c.PreferredPhysicianName
		details.IsMultiMdConsult = c.IsMultiMdConsult
	}
	return details, nil
}

// ServiceList returns the primary service of each inquiry that has a
// pre-consultation. Inquiries without one are left out.
func (s *Service) ServiceList(ctx context.Context, input ServiceListInput) ([]ServiceListItem, error) {
	if _, err := callerFromCtx(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, domain.AsError(err)
	}

	items, err := s.store.ListByInquiryIDs(ctx, input.InquiryIDs)
	if err != nil {
		return nil, domain.AsError(fmt.Errorf("list by inquiry: %w", err))
	}

	out := make([]ServiceListItem, 0, len(items))
	for _, p := range items {
		out = append(out, ServiceListItem{
			ID:                         p.ID,
			InquiryID:                  p.InquiryID,
			PrimaryConsultationService: p.PrimaryService(),
		})
	}
	return out, nil
}

// MedicalReportDetails returns the uploaded reports of the case.
func (s *Service) MedicalReportDetails(ctx context.Context, caseReference string) ([]MedicalReportRow, error) {
	p, err := s.byCaseReference(ctx, caseReference)
	if err != nil {
		return nil, err
	}

	rows := make([]MedicalReportRow, 0, len(p.MedicalReports))
	for _, r := range p.MedicalReports {
		rows = append(rows, MedicalReportRow{
			ID:                  r.ID,
			ReportCategory:      r.Category,
			ReportType:          r.ReportType,
			ReportDescription:   r.Description,
			ReportTakenDate:     r.TakenDate,
			ReportStatus:        r.Status,
			ReferenceDocumentID: r.ReferenceDocumentID,
		})
	}
	return rows, nil
}

// IdentityDocumentDetails returns the government IDs of the case.
func (s *Service) IdentityDocumentDetails(ctx context.Context, caseReference string) ([]IdentityDocumentRow, error) {
	p, err := s.byCaseReference(ctx, caseReference)
	if err != nil {
		return nil, err
	}

	rows := make([]IdentityDocumentRow, 0, len(p.IdentityDocuments))
	for _, d := range p.IdentityDocuments {
		row := IdentityDocumentRow{
			ID:                   d.ID,
			IdentificationStatus: d.Status,
			ReferenceDocumentID:  d.ReferenceDocumentID,
		}
		if d.Identification != nil {
			row.IdentificationType = d.Identification.Type()
			row.IdentificationNumber = d.Identification.Number()
			if other, ok := d.Identification.(domain.OtherIdentification); ok {
				row.OtherIdentificationName = other.Name
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Service) byCaseReference(ctx context.Context, caseReference string) (*domain.PreConsultation, error) {
	if _, err := callerFromCtx(ctx); err != nil {
		return nil, err
	}
	if errs := textField("caseReference", caseReference, true); len(errs) > 0 {
		return nil, domain.AsError(domain.NewValidationErrors(errs))
	}

	p, err := s.store.FindByCaseReference(ctx, strings.TrimSpace(caseReference))
	if err != nil {
		return nil, queryError(err, fmt.Sprintf("no pre-consultation for case %s", caseReference))
	}
	return p, nil
}

func queryError(err error, notFound string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError(domain.CodeAggregateNotFound, notFound)
	}
	return domain.AsError(err)
}
