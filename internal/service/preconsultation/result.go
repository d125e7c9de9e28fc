package preconsultation

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// ServiceDetails is the selected services of a case.
type ServiceDetails struct {
	ID                     uuid.UUID
	Services               []domain.ServiceName
	PreferredPhysicianName string
	IsMultiMdConsult       bool
}

// ServiceListItem is the primary service of one inquiry.
type ServiceListItem struct {
	ID                         uuid.UUID
	InquiryID                  string
	PrimaryConsultationService domain.ServiceName
}

// MedicalReportRow is one uploaded report of a case.
type MedicalReportRow struct {
	ID                  string
	ReportCategory      domain.ReportCategory
	ReportType          string
	ReportDescription   string
	ReportTakenDate     *time.Time
	ReportStatus        string
	ReferenceDocumentID string
}

// IdentityDocumentRow is one government ID of a case. OtherIdentificationName
// is only set for the OTHER type.
type IdentityDocumentRow struct {
	ID                      string
	IdentificationType      domain.IdentityDocumentType
	IdentificationNumber    string
	OtherIdentificationName string
	IdentificationStatus    string
	ReferenceDocumentID     string
}
