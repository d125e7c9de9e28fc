package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/service/preconsultation"
)

// preConsultationService defines the commands and queries served over REST.
type preConsultationService interface {
	SubmitServiceSelection(ctx context.Context, input preconsultation.SubmitServiceSelectionInput) (*preconsultation.CommandResult, error)
	AssignOfficer(ctx context.Context, input preconsultation.AssignOfficerInput) (*preconsultation.CommandResult, error)
	ReassignOfficer(ctx context.Context, input preconsultation.ReassignOfficerInput) (*preconsultation.CommandResult, error)
	NotifyPatient(ctx context.Context, input preconsultation.NotifyPatientInput) (*preconsultation.CommandResult, error)

	GetPreConsultation(ctx context.Context, id uuid.UUID) (*domain.PreConsultation, error)
	ServiceDetails(ctx context.Context, caseReference string) (*preconsultation.ServiceDetails, error)
	ServiceList(ctx context.Context, input preconsultation.ServiceListInput) ([]preconsultation.ServiceListItem, error)
	MedicalReportDetails(ctx context.Context, caseReference string) ([]preconsultation.MedicalReportRow, error)
	IdentityDocumentDetails(ctx context.Context, caseReference string) ([]preconsultation.IdentityDocumentRow, error)
}

// PreConsultationHandler serves the pre-consultation REST endpoints.
type PreConsultationHandler struct {
	svc preConsultationService
	log *slog.Logger
}

// NewPreConsultationHandler creates a PreConsultationHandler.
func NewPreConsultationHandler(svc preConsultationService, logger *slog.Logger) *PreConsultationHandler {
	return &PreConsultationHandler{svc: svc, log: logger.With("handler", "preconsultation")}
}

// Routes mounts the endpoints on r.
func (h *PreConsultationHandler) Routes(r chi.Router) {
	r.Route("/pre-consultations", func(pr chi.Router) {
		pr.Post("/", h.SubmitServiceSelection)
		pr.Get("/{id}", h.GetPreConsultation)
		pr.Post("/{id}/assignment", h.AssignOfficer)
		pr.Put("/{id}/assignment", h.ReassignOfficer)
		pr.Post("/{id}/patient-notifications", h.NotifyPatient)
	})
	r.Route("/cases/{caseReference}", func(cr chi.Router) {
		cr.Get("/services", h.ServiceDetails)
		cr.Get("/medical-reports", h.MedicalReportDetails)
		cr.Get("/identity-documents", h.IdentityDocumentDetails)
	})
	r.Get("/services", h.ServiceList)
}

// SubmitServiceSelection handles POST /pre-consultations.
// Returns 201 on creation and 200 when the case was already processed.
func (h *PreConsultationHandler) SubmitServiceSelection(w http.ResponseWriter, r *http.Request) {
	var req submitServiceSelectionRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	services, ferrs := toServices(req.Services)
	if len(ferrs) > 0 {
		writeError(w, r, h.log, domain.NewValidationErrors(ferrs))
		return
	}

	res, err := h.svc.SubmitServiceSelection(r.Context(), preconsultation.SubmitServiceSelectionInput{
		CaseReference: req.CaseReference,
		InquiryID:     req.InquiryID,
		Services:      services,
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	if res.AlreadyProcessed {
		status = http.StatusOK
	}
	writeJSON(w, status, toCommandResponse(res))
}

// AssignOfficer handles POST /pre-consultations/{id}/assignment.
func (h *PreConsultationHandler) AssignOfficer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req assignOfficerRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.AssignOfficer(r.Context(), preconsultation.AssignOfficerInput{
		PreConsultationID: id,
		Description:       req.Description,
	})
	h.writeCommand(w, r, res, err)
}

// ReassignOfficer handles PUT /pre-consultations/{id}/assignment.
func (h *PreConsultationHandler) ReassignOfficer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req reassignOfficerRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ReassignOfficer(r.Context(), preconsultation.ReassignOfficerInput{
		PreConsultationID: id,
		OfficerUserID:     req.OfficerUserID,
		Description:       req.Description,
	})
	h.writeCommand(w, r, res, err)
}

// NotifyPatient handles POST /pre-consultations/{id}/patient-notifications.
func (h *PreConsultationHandler) NotifyPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req notifyPatientRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.NotifyPatient(r.Context(), preconsultation.NotifyPatientInput{
		PreConsultationID: id,
		CaseReference:     req.CaseReference,
		Description:       req.Description,
	})
	h.writeCommand(w, r, res, err)
}

// GetPreConsultation handles GET /pre-consultations/{id}.
func (h *PreConsultationHandler) GetPreConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetPreConsultation(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreConsultationResponse(p))
}

// ServiceDetails handles GET /cases/{caseReference}/services.
func (h *PreConsultationHandler) ServiceDetails(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.ServiceDetails(r.Context(), chi.URLParam(r, "caseReference"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceDetailsResponse(d))
}

// MedicalReportDetails handles GET /cases/{caseReference}/medical-reports.
func (h *PreConsultationHandler) MedicalReportDetails(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.MedicalReportDetails(r.Context(), chi.URLParam(r, "caseReference"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMedicalReportRows(rows))
}

// IdentityDocumentDetails handles GET /cases/{caseReference}/identity-documents.
func (h *PreConsultationHandler) IdentityDocumentDetails(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.IdentityDocumentDetails(r.Context(), chi.URLParam(r, "caseReference"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toIdentityDocRows(rows))
}

// ServiceList handles GET /services?inquiryId=a&inquiryId=b.
// Comma-separated values are accepted as well.
func (h *PreConsultationHandler) ServiceList(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, v := range r.URL.Query()["inquiryId"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	items, err := h.svc.ServiceList(r.Context(), preconsultation.ServiceListInput{InquiryIDs: ids})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceList(items))
}

func (h *PreConsultationHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *PreConsultationHandler) writeCommand(w http.ResponseWriter, r *http.Request, res *preconsultation.CommandResult, err error) {
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommandResponse(res))
}
