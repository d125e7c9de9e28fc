package rest

import (
	"maps"
	"slices"
	"time"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/service/preconsultation"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type submitServiceSelectionRequest struct {
	CaseReference string        `json:"caseReference"`
	InquiryID     string        `json:"inquiryId"`
	Services      []serviceJSON `json:"services"`
	Description   string        `json:"description"`
}

type assignOfficerRequest struct {
	Description string `json:"description"`
}

type reassignOfficerRequest struct {
	OfficerUserID string `json:"moUserId"`
	Description   string `json:"description"`
}

type notifyPatientRequest struct {
	CaseReference string `json:"caseReference"`
	Description   string `json:"description"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type commandResponse struct {
	ID               string `json:"id"`
	Version          int    `json:"version"`
	AlreadyProcessed bool   `json:"alreadyProcessed"`
}

func toCommandResponse(res *preconsultation.CommandResult) commandResponse {
	return commandResponse{
		ID:               res.PreConsultation.ID.String(),
		Version:          res.PreConsultation.Version,
		AlreadyProcessed: res.AlreadyProcessed,
	}
}

type preConsultationResponse struct {
	ID                 string              `json:"id"`
	Version            int                 `json:"version"`
	VersionComments    string              `json:"versionComments"`
	CaseReference      string              `json:"caseReference"`
	InquiryID          string              `json:"inquiryId"`
	Services           []serviceJSON       `json:"services"`
	MedicalReports     []medicalReportJSON `json:"medicalReports"`
	IdentityDocuments  []identityDocJSON   `json:"identityDocuments"`
	PaymentReferenceID string              `json:"paymentReferenceId,omitempty"`
	Assignments        []assignmentJSON    `json:"assignments"`
	ReviewStatus       *reviewStatusJSON   `json:"reviewStatus,omitempty"`
	Reminders          []reminderJSON      `json:"reminders"`
	Notifications      []notificationJSON  `json:"notifications"`
	AuditHistory       []domain.AuditEntry `json:"auditHistory"`
}

type medicalReportJSON struct {
	ID                  string     `json:"id"`
	ReportCategory      string     `json:"reportCategory"`
	ReportType          string     `json:"reportType"`
	ReportDescription   string     `json:"reportDescription"`
	ReportTakenDate     *time.Time `json:"reportTakenDate,omitempty"`
	ReportStatus        string     `json:"reportStatus"`
	ReferenceDocumentID string     `json:"referenceDocumentId"`
}

type identityDocJSON struct {
	ID                      string `json:"id"`
	IdentificationType      string `json:"identificationType"`
	IdentificationNumber    string `json:"identificationNumber"`
	OtherIdentificationName string `json:"otherIdentificationName,omitempty"`
	IdentificationStatus    string `json:"identificationStatus"`
	ReferenceDocumentID     string `json:"referenceDocumentId"`
}

type assignmentJSON struct {
	ID               string    `json:"id"`
	Role             string    `json:"role"`
	AssignedUserID   string    `json:"assignedUserId"`
	AssignedDate     time.Time `json:"assignedDate"`
	Mode             string    `json:"mode"`
	AssignedByUserID string    `json:"assignedByUserId,omitempty"`
}

type reviewStatusJSON struct {
	Reviewer   string    `json:"reviewer"`
	ReviewerID string    `json:"reviewerId"`
	State      string    `json:"state"`
	Comments   string    `json:"comments,omitempty"`
	ReviewDate time.Time `json:"reviewDate"`
}

type reminderJSON struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	CreatedDate   time.Time  `json:"createdDate"`
	ReminderDate  time.Time  `json:"reminderDate"`
	Status        string     `json:"status"`
	CancelledDate *time.Time `json:"cancelledDate,omitempty"`
}

type notificationJSON struct {
	Type         string    `json:"type"`
	ID           string    `json:"id"`
	NotifiedDate time.Time `json:"notifiedDate"`
	Comment      string    `json:"comment,omitempty"`
}

func toPreConsultationResponse(p *domain.PreConsultation) preConsultationResponse {
	resp := preConsultationResponse{
		ID:                p.ID.String(),
		Version:           p.Version,
		VersionComments:   p.VersionComments,
		CaseReference:     p.CaseReference,
		InquiryID:         p.InquiryID,
		Services:          fromServices(p.Services),
		MedicalReports:    toMedicalReports(p.MedicalReports),
		IdentityDocuments: make([]identityDocJSON, 0, len(p.IdentityDocuments)),
		Assignments:       make([]assignmentJSON, 0, len(p.Assignments)),
		Reminders:         make([]reminderJSON, 0, len(p.Reminders)),
		Notifications:     make([]notificationJSON, 0, len(p.Notifications)),
		AuditHistory:      p.AuditHistory,
	}

	for _, d := range p.IdentityDocuments {
		doc := identityDocJSON{ID: d.ID, IdentificationStatus: d.Status, ReferenceDocumentID: d.ReferenceDocumentID}
		if d.Identification != nil {
			doc.IdentificationType = d.Identification.Type().String()
			doc.IdentificationNumber = d.Identification.Number()
			if other, ok := d.Identification.(domain.OtherIdentification); ok {
				doc.OtherIdentificationName = other.Name
			}
		}
		resp.IdentityDocuments = append(resp.IdentityDocuments, doc)
	}

	if p.PaymentReference != nil {
		resp.PaymentReferenceID = p.PaymentReference.ID
	}

	for _, role := range slices.Sorted(maps.Keys(p.Assignments)) {
		a := p.Assignments[role]
		resp.Assignments = append(resp.Assignments, assignmentJSON{
			ID:               a.ID.String(),
			Role:             a.Role.String(),
			AssignedUserID:   a.AssignedUserID,
			AssignedDate:     a.AssignedDate,
			Mode:             a.Mode.String(),
			AssignedByUserID: a.AssignedByUserID,
		})
	}

	if rs := p.ReviewStatus; rs != nil {
		resp.ReviewStatus = &reviewStatusJSON{
			Reviewer:   rs.Reviewer.String(),
			ReviewerID: rs.ReviewerID,
			State:      rs.State.String(),
			Comments:   rs.Comments,
			ReviewDate: rs.ReviewDate,
		}
	}

	for _, t := range slices.Sorted(maps.Keys(p.Reminders)) {
		r := p.Reminders[t]
		resp.Reminders = append(resp.Reminders, reminderJSON{
			ID:            r.ID,
			Type:          r.Type.String(),
			CreatedDate:   r.CreatedDate,
			ReminderDate:  r.ReminderDate,
			Status:        r.Status.String(),
			CancelledDate: r.CancelledDate,
		})
	}

	for _, t := range slices.Sorted(maps.Keys(p.Notifications)) {
		n := p.Notifications[t]
		resp.Notifications = append(resp.Notifications, notificationJSON{
			Type:         n.Type.String(),
			ID:           n.ID,
			NotifiedDate: n.NotifiedDate,
			Comment:      n.Comment,
		})
	}

	return resp
}

func toMedicalReports(reports []domain.MedicalReport) []medicalReportJSON {
	out := make([]medicalReportJSON, 0, len(reports))
	for _, r := range reports {
		out = append(out, medicalReportJSON{
			ID:                  r.ID,
			ReportCategory:      r.Category.String(),
			ReportType:          r.ReportType,
			ReportDescription:   r.Description,
			ReportTakenDate:     r.TakenDate,
			ReportStatus:        r.Status,
			ReferenceDocumentID: r.ReferenceDocumentID,
		})
	}
	return out
}

type serviceDetailsResponse struct {
	ID                     string   `json:"id"`
	Services               []string `json:"services"`
	PreferredPhysicianName string   `json:"preferredPhysicianName"`
	IsMultiMdConsult       bool     `json:"isMultiMdConsult"`
}

type serviceListItemJSON struct {
	ID                         string `json:"id"`
	InquiryID                  string `json:"inquiryId"`
	PrimaryConsultationService string `json:"primaryConsultationService"`
}

func toServiceDetailsResponse(d *preconsultation.ServiceDetails) serviceDetailsResponse {
	out := serviceDetailsResponse{
		ID:                     d.ID.String(),
		Services:               make([]string, 0, len(d.Services)),
		PreferredPhysicianName: d.PreferredPhysicianName,
		IsMultiMdConsult:       d.IsMultiMdConsult,
	}
	for _, n := range d.Services {
		out.Services = append(out.Services, n.String())
	}
	return out
}

func toServiceList(items []preconsultation.ServiceListItem) []serviceListItemJSON {
	out := make([]serviceListItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, serviceListItemJSON{
			ID:                         it.ID.String(),
			InquiryID:                  it.InquiryID,
			PrimaryConsultationService: it.PrimaryConsultationService.String(),
		})
	}
	return out
}

func toMedicalReportRows(rows []preconsultation.MedicalReportRow) []medicalReportJSON {
	out := make([]medicalReportJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, medicalReportJSON{
			ID:                  r.ID,
			ReportCategory:      r.ReportCategory.String(),
			ReportType:          r.ReportType,
			ReportDescription:   r.ReportDescription,
			ReportTakenDate:     r.ReportTakenDate,
			ReportStatus:        r.ReportStatus,
			ReferenceDocumentID: r.ReferenceDocumentID,
		})
	}
	return out
}

func toIdentityDocRows(rows []preconsultation.IdentityDocumentRow) []identityDocJSON {
	out := make([]identityDocJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, identityDocJSON{
			ID:                      r.ID,
			IdentificationType:      r.IdentificationType.String(),
			IdentificationNumber:    r.IdentificationNumber,
			OtherIdentificationName: r.OtherIdentificationName,
			IdentificationStatus:    r.IdentificationStatus,
			ReferenceDocumentID:     r.ReferenceDocumentID,
		})
	}
	return out
}
