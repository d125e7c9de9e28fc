package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventName identifies an event in the catalog.
type EventName string

const (
	EventServiceSelectionSubmitted EventName = "ServiceSelectionSubmitted"
	EventOfficerAssigned           EventName = "OfficerAssigned"
	EventOfficerReassigned         EventName = "OfficerReassigned"
	EventPatientNotified           EventName = "PatientNotified"
)

func (n EventName) String() string { return string(n) }

// EventMeta is the envelope shared by every event.
type EventMeta struct {
	ID          uuid.UUID
	AggregateID uuid.UUID
	CreatedBy   string
	CreatedAt   time.Time
	CommandName string
	Comments    string
}

// Metadata returns the envelope.
func (m EventMeta) Metadata() EventMeta { return m }

// Event is an immutable fact produced by one successfully processed command.
type Event interface {
	Name() EventName
	Metadata() EventMeta
	isEvent()
}

// ServiceSelectionSubmitted creates the aggregate.
type ServiceSelectionSubmitted struct {
	EventMeta
	CaseReference string
	InquiryID     string
	Services      []Service
}

// OfficerAssigned records an automatic assignment.
type OfficerAssigned struct {
	EventMeta
	Assignment Assignment
}

// OfficerReassigned records a manual assignment that replaces Previous.
type OfficerReassigned struct {
	EventMeta
	Assignment Assignment
	Previous   *Assignment
}

// PatientNotified records a dispatched notification.
type PatientNotified struct {
	EventMeta
	Notification Notification
}

func (ServiceSelectionSubmitted) Name() EventName { return EventServiceSelectionSubmitted }
func (OfficerAssigned) Name() EventName           { return EventOfficerAssigned }
func (OfficerReassigned) Name() EventName         { return EventOfficerReassigned }
func (PatientNotified) Name() EventName           { return EventPatientNotified }

func (ServiceSelectionSubmitted) isEvent() {}
func (OfficerAssigned) isEvent()           {}
func (OfficerReassigned) isEvent()         {}
func (PatientNotified) isEvent()           {}

// IsCreation reports whether e creates the aggregate rather than mutating it.
func IsCreation(e Event) bool {
	_, ok := e.(ServiceSelectionSubmitted)
	return ok
}

// Apply derives the next snapshot from old and e. It never modifies old.
// Creation events require old to be nil and yield version 0; every other
// event requires old and yields old.Version+1.
func Apply(old *PreConsultation, e Event) (*PreConsultation, error) {
	if created, ok := e.(ServiceSelectionSubmitted); ok {
		if old != nil {
			return nil, fmt.Errorf("apply %s: pre-consultation %s: %w", e.Name(), old.ID, ErrAlreadyExists)
		}
		return applyServiceSelectionSubmitted(created), nil
	}

	meta := e.Metadata()
	if old == nil {
		return nil, NewNotFoundError(CodeAggregateNotFound,
			fmt.Sprintf("pre-consultation %s does not exist", meta.AggregateID))
	}
	if meta.AggregateID != old.ID {
		return nil, fmt.Errorf("apply %s: event targets %s, aggregate is %s: %w",
			e.Name(), meta.AggregateID, old.ID, ErrInvariant)
	}

	next := old.Clone()
	next.IsNew = false
	next.Version = old.Version + 1
	next.VersionComments = meta.Comments
	next.AuditHistory = append(next.AuditHistory, auditEntry(meta, next.Version))

	switch ev := e.(type) {
	case OfficerAssigned:
		setAssignment(next, ev.Assignment)
	case OfficerReassigned:
		setAssignment(next, ev.Assignment)
	case PatientNotified:
		if next.Notifications == nil {
			next.Notifications = make(map[NotificationType]Notification, 1)
		}
		next.Notifications[ev.Notification.Type] = ev.Notification
	default:
		return nil, fmt.Errorf("apply: unknown event %T: %w", e, ErrInvariant)
	}

	return next, nil
}

func applyServiceSelectionSubmitted(e ServiceSelectionSubmitted) *PreConsultation {
	return &PreConsultation{
		ID:              e.AggregateID,
		Version:         0,
		VersionComments: e.Comments,
		IsNew:           true,
		AuditHistory:    []AuditEntry{auditEntry(e.EventMeta, 0)},
		CaseReference:   e.CaseReference,
		InquiryID:       e.InquiryID,
		Services:        append([]Service(nil), e.Services...),
	}
}

// setAssignment replaces the assignment of the role. At most one
// assignment exists per role.
func setAssignment(p *PreConsultation, a Assignment) {
	if p.Assignments == nil {
		p.Assignments = make(map[AssignmentRole]Assignment, 1)
	}
	p.Assignments[a.Role] = a
}

func auditEntry(meta EventMeta, version int) AuditEntry {
	return AuditEntry{
		Comments:    meta.Comments,
		Version:     version,
		CreatedBy:   meta.CreatedBy,
		CommandName: meta.CommandName,
		Timestamp:   meta.CreatedAt,
	}
}
