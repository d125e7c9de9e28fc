package preconsultation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Command names recorded in the audit history.
const (
	CommandSubmitServiceSelection = "SubmitServiceSelection"
	CommandAssignOfficer          = "AssignOfficer"
	CommandReassignOfficer        = "ReassignOfficer"
	CommandNotifyPatient          = "NotifyPatient"
)

const maxDescriptionLength = 1000

// SubmitServiceSelectionInput creates the pre-consultation of a case.
type SubmitServiceSelectionInput struct {
	CaseReference string
	InquiryID     string
	Services      []domain.Service
	Description   string
}

func (SubmitServiceSelectionInput) CommandName() string    { return CommandSubmitServiceSelection }
func (SubmitServiceSelectionInput) AggregateID() uuid.UUID { return uuid.Nil }

func (i SubmitServiceSelectionInput) Comments() string {
	return commentOr(i.Description, "Service selection submitted")
}

// Validate checks all fields and collects all errors.
func (i SubmitServiceSelectionInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, textField("caseReference", i.CaseReference, true)...)
	errs = append(errs, textField("inquiryId", i.InquiryID, true)...)
	errs = append(errs, descriptionField(i.Description)...)

	if len(i.Services) == 0 {
		errs = append(errs, domain.FieldError{Field: "services", Message: "at least one service is required"})
	}

	seen := make(map[domain.ServiceName]struct{}, len(i.Services))
	for idx, s := range i.Services {
		field := fmt.Sprintf("services[%d]", idx)
		if s != nil {
			if _, dup := seen[s.Name()]; dup {
				errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("duplicate service %s", s.Name())})
			}
			seen[s.Name()] = struct{}{}
		}
		errs = append(errs, domain.ServiceFieldErrors(field, s)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignOfficerInput picks the least-loaded officer for an existing
// pre-consultation.
type AssignOfficerInput struct {
	PreConsultationID uuid.UUID
	Description       string
}

func (AssignOfficerInput) CommandName() string      { return CommandAssignOfficer }
func (i AssignOfficerInput) AggregateID() uuid.UUID { return i.PreConsultationID }
func (i AssignOfficerInput) Comments() string       { return commentOr(i.Description, "Officer assigned") }

// Validate checks all fields and collects all errors.
func (i AssignOfficerInput) Validate() error {
	var errs []domain.FieldError

	if i.PreConsultationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, descriptionField(i.Description)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReassignOfficerInput replaces the officer by hand.
type ReassignOfficerInput struct {
	PreConsultationID uuid.UUID
	OfficerUserID     string
	Description       string
}

func (ReassignOfficerInput) CommandName() string      { return CommandReassignOfficer }
func (i ReassignOfficerInput) AggregateID() uuid.UUID { return i.PreConsultationID }
func (i ReassignOfficerInput) Comments() string       { return commentOr(i.Description, "Officer reassigned") }

// Validate checks all fields and collects all errors.
func (i ReassignOfficerInput) Validate() error {
	var errs []domain.FieldError

	if i.PreConsultationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, textField("moUserId", i.OfficerUserID, true)...)
	errs = append(errs, descriptionField(i.Description)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NotifyPatientInput sends the service selection notification to the patient.
type NotifyPatientInput struct {
	PreConsultationID uuid.UUID
	CaseReference     string
	Description       string
}

func (NotifyPatientInput) CommandName() string      { return CommandNotifyPatient }
func (i NotifyPatientInput) AggregateID() uuid.UUID { return i.PreConsultationID }
func (i NotifyPatientInput) Comments() string       { return commentOr(i.Description, "Patient notified") }

// Validate checks all fields and collects all errors.
func (i NotifyPatientInput) Validate() error {
	var errs []domain.FieldError

	if i.PreConsultationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, textField("caseReference", i.CaseReference, true)...)
	errs = append(errs, descriptionField(i.Description)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ServiceListInput selects pre-consultations by inquiry.
type ServiceListInput struct {
	InquiryIDs []string
}

// Validate checks all fields and collects all errors.
func (i ServiceListInput) Validate() error {
	var errs []domain.FieldError

	if len(i.InquiryIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "inquiryId", Message: "at least one inquiry id is required"})
	}
	for idx, id := range i.InquiryIDs {
		errs = append(errs, textField(fmt.Sprintf("inquiryId[%d]", idx), id, true)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func textField(field, value string, required bool) []domain.FieldError {
	if required && strings.TrimSpace(value) == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if domain.HasHTMLTags(value) {
		return []domain.FieldError{{Field: field, Message: "must not contain HTML"}}
	}
	return nil
}

func descriptionField(value string) []domain.FieldError {
	if len(value) > maxDescriptionLength {
		return []domain.FieldError{{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)}}
	}
	return textField("description", value, false)
}

func commentOr(description, fallback string) string {
	if d := strings.TrimSpace(description); d != "" {
		return d
	}
	return fallback
}
