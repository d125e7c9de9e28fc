// Package record maps the pre-consultation aggregate to the flat storage
// shape and back: one root row plus five child collections.
//
// Tagged unions are flattened by their discriminant. Only the columns legal
// for the active tag are written, and a tag with no mapping in either
// direction is reported as *domain.UnmappedVariantError.
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Record is the complete flat form of one aggregate.
type Record struct {
	Root          Root
	Reports       []Report
	IdentityDocs  []IdentityDoc
	Assignments   []AssignmentRow
	Reminders     []ReminderRow
	Notifications []NotificationRow
}

// Root is the pre_consultations row.
type Root struct {
	ID              uuid.UUID
	Version         int
	VersionComments string
	CaseReference   string
	InquiryID       string
	AuditHistory    []domain.AuditEntry

	ServiceNames []string

	// Consultation columns, set only when a video or written consultation is selected.
	PreferredPhysicianName *string
	SupplementaryServices  []string
	IsMultiMdConsult       *bool

	// Pathology columns, set only when a pathology review is selected.
	SlideType           *string
	PathologyType       *string
	CourierType         *string
	TrackingID          *string
	ContactPersonName   *string
	ContactPersonPhone  *string
	CollectSpecimenFrom *string

	PaymentReferenceID *string

	Reviewer       *string
	ReviewerID     *string
	ReviewState    *string
	ReviewComments *string
	ReviewDate     *time.Time
}

// Report is a pre_consultation_medical_reports row.
type Report struct {
	ReportID            string
	Category            string
	ReportType          string
	Description         *string
	TakenDate           *time.Time
	ReferenceDocumentID *string
	Status              *string
}

// IdentityDoc is a pre_consultation_identity_documents row.
type IdentityDoc struct {
	DocumentID           string
	IdentityType         string
	AadhaarNumber        *string
	PassportNumber       *string
	DrivingLicenseNumber *string
	OtherName            *string
	OtherNumber          *string
	ReferenceDocumentID  *string
	Status               *string
}

// AssignmentRow is a pre_consultation_assignments row, unique per role.
type AssignmentRow struct {
	ID               uuid.UUID
	Role             string
	AssignedUserID   string
	AssignedDate     time.Time
	Mode             string
	AssignedByUserID *string
}

// ReminderRow is a pre_consultation_reminders row, unique per type.
type ReminderRow struct {
	ReminderType  string
	ReminderID    string
	CreatedDate   time.Time
	ReminderDate  time.Time
	Status        string
	CancelledDate *time.Time
}

// NotificationRow is a pre_consultation_notifications row, unique per type.
type NotificationRow struct {
	NotificationType string
	NotificationID   string
	NotifiedDate     time.Time
	Comment          *string
}

func ptr[T any](v T) *T { return &v }

// nonEmpty returns nil for the empty string.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
