package domain

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// AggregateName is the name under which pre-consultations are stored and audited.
const AggregateName = "PreConsultation"

// PreConsultation is the aggregate root. It is only changed by applying
// events; every applied event bumps Version by one and appends one audit entry.
type PreConsultation struct {
	ID              uuid.UUID
	Version         int
	VersionComments string

	// IsNew is set on the snapshot produced by the creation event and is
	// never persisted.
	IsNew bool

	AuditHistory []AuditEntry

	CaseReference string
	InquiryID     string
	Services      []Service

	MedicalReports    []MedicalReport
	IdentityDocuments []IdentityDocument
	PaymentReference  *PaymentReference

	Assignments   map[AssignmentRole]Assignment
	ReviewStatus  *ReviewStatus
	Reminders     map[ReminderType]Reminder
	Notifications map[NotificationType]Notification
}

// AuditEntry is one line of the append-only history. Entries with equal
// values are legitimate and are kept.
type AuditEntry struct {
	Comments    string    `json:"comments"`
	Version     int       `json:"version"`
	CreatedBy   string    `json:"createdBy"`
	CommandName string    `json:"commandName"`
	Timestamp   time.Time `json:"timestamp"`
}

// MedicalReport is an uploaded report attached to the case.
type MedicalReport struct {
	ID                  string
	Category            ReportCategory
	ReportType          string
	Description         string
	TakenDate           *time.Time
	ReferenceDocumentID string
	Status              string
}

// IdentityDocument is a patient government identification.
type IdentityDocument struct {
	ID                  string
	Identification      Identification
	ReferenceDocumentID string
	Status              string
}

// Identification is a closed union of the accepted government IDs.
type Identification interface {
	Type() IdentityDocumentType
	Number() string
	isIdentification()
}

type AadhaarCard struct{ AadhaarNumber string }
type Passport struct{ PassportNumber string }
type DrivingLicense struct{ DrivingLicenseNumber string }

// OtherIdentification is any other government ID, named by the patient.
type OtherIdentification struct {
	Name     string
	IDNumber string
}

func (AadhaarCard) Type() IdentityDocumentType         { return IdentityAadhaarCard }
func (Passport) Type() IdentityDocumentType            { return IdentityPassport }
func (DrivingLicense) Type() IdentityDocumentType      { return IdentityDrivingLicense }
func (OtherIdentification) Type() IdentityDocumentType { return IdentityOther }

func (a AadhaarCard) Number() string         { return a.AadhaarNumber }
func (p Passport) Number() string            { return p.PassportNumber }
func (d DrivingLicense) Number() string      { return d.DrivingLicenseNumber }
func (o OtherIdentification) Number() string { return o.IDNumber }

func (AadhaarCard) isIdentification()         {}
func (Passport) isIdentification()            {}
func (DrivingLicense) isIdentification()      {}
func (OtherIdentification) isIdentification() {}

type PaymentReference struct {
	ID string
}

// Assignment binds a user to the case for a role. AssignedByUserID is set
// only for manual assignments.
type Assignment struct {
	ID               uuid.UUID
	Role             AssignmentRole
	AssignedUserID   string
	AssignedDate     time.Time
	Mode             AssignmentMode
	AssignedByUserID string
}

// ReviewStatus records the outcome of the case review. Comments are only
// present on rejections.
type ReviewStatus struct {
	Reviewer   ReviewerRole
	ReviewerID string
	State      ReviewState
	Comments   string
	ReviewDate time.Time
}

// Reminder is a scheduled reminder. CancelledDate is set only when the
// status is CANCELLED.
type Reminder struct {
	ID            string
	Type          ReminderType
	CreatedDate   time.Time
	ReminderDate  time.Time
	Status        ReminderState
	CancelledDate *time.Time
}

// Notification records a dispatched notification. Comment is only carried
// by rejection notification types.
type Notification struct {
	Type         NotificationType
	ID           string
	NotifiedDate time.Time
	Comment      string
}

// Assignment returns the current assignment for role.
func (p *PreConsultation) Assignment(role AssignmentRole) (Assignment, bool) {
	a, ok := p.Assignments[role]
	return a, ok
}

// PrimaryService is the first selected service.
func (p *PreConsultation) PrimaryService() ServiceName {
	if len(p.Services) == 0 {
		return ""
	}
	return p.Services[0].Name()
}

// Clone returns a copy that shares no slices or maps with p. Service and
// Identification values are immutable and are shared.
func (p *PreConsultation) Clone() *PreConsultation {
	if p == nil {
		return nil
	}

	c := *p
	c.AuditHistory = slices.Clone(p.AuditHistory)
	c.Services = slices.Clone(p.Services)
	c.MedicalReports = slices.Clone(p.MedicalReports)
	c.IdentityDocuments = slices.Clone(p.IdentityDocuments)
	c.Assignments = maps.Clone(p.Assignments)
	c.Reminders = maps.Clone(p.Reminders)
	c.Notifications = maps.Clone(p.Notifications)

	if p.PaymentReference != nil {
		ref := *p.PaymentReference
		c.PaymentReference = &ref
	}
	if p.ReviewStatus != nil {
		rs := *p.ReviewStatus
		c.ReviewStatus = &rs
	}

	return &c
}
