package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/service/preconsultation"
)

var _ preConsultationService = &preConsultationServiceMock{}

type preConsultationServiceMock struct {
	SubmitServiceSelectionFunc  func(ctx context.Context, input preconsultation.SubmitServiceSelectionInput) (*preconsultation.CommandResult, error)
	AssignOfficerFunc           func(ctx context.Context, input preconsultation.AssignOfficerInput) (*preconsultation.CommandResult, error)
	ReassignOfficerFunc         func(ctx context.Context, input preconsultation.ReassignOfficerInput) (*preconsultation.CommandResult, error)
	NotifyPatientFunc           func(ctx context.Context, input preconsultation.NotifyPatientInput) (*preconsultation.CommandResult, error)
	GetPreConsultationFunc      func(ctx context.Context, id uuid.UUID) (*domain.PreConsultation, error)
	ServiceDetailsFunc          func(ctx context.Context, caseReference string) (*preconsultation.ServiceDetails, error)
	ServiceListFunc             func(ctx context.Context, input preconsultation.ServiceListInput) ([]preconsultation.ServiceListItem, error)
	MedicalReportDetailsFunc    func(ctx context.Context, caseReference string) ([]preconsultation.MedicalReportRow, error)
	IdentityDocumentDetailsFunc func(ctx context.Context, caseReference string) ([]preconsultation.IdentityDocumentRow, error)

	calls struct {
		SubmitServiceSelection []struct {
			Ctx   context.Context
			Input preconsultation.SubmitServiceSelectionInput
		}
		AssignOfficer []struct {
			Ctx   context.Context
			Input preconsultation.AssignOfficerInput
		}
		ReassignOfficer []struct {
			Ctx   context.Context
			Input preconsultation.ReassignOfficerInput
		}
		NotifyPatient []struct {
			Ctx   context.Context
			Input preconsultation.NotifyPatientInput
		}
		GetPreConsultation []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ServiceDetails []struct {
			Ctx           context.Context
			CaseReference string
		}
		ServiceList []struct {
			Ctx   context.Context
			Input preconsultation.ServiceListInput
		}
		MedicalReportDetails []struct {
			Ctx           context.Context
			CaseReference string
		}
		IdentityDocumentDetails []struct {
			Ctx           context.Context
			CaseReference string
		}
	}
	lockSubmitServiceSelection  sync.RWMutex
	lockAssignOfficer           sync.RWMutex
	lockReassignOfficer         sync.RWMutex
	lockNotifyPatient           sync.RWMutex
	lockGetPreConsultation      sync.RWMutex
	lockServiceDetails          sync.RWMutex
	lockServiceList             sync.RWMutex
	lockMedicalReportDetails    sync.RWMutex
	lockIdentityDocumentDetails sync.RWMutex
}

func (mock *preConsultationServiceMock) SubmitServiceSelection(ctx context.Context, input preconsultation.SubmitServiceSelectionInput) (*preconsultation.CommandResult, error) {
	if mock.SubmitServiceSelectionFunc == nil {
		panic("preConsultationServiceMock.SubmitServiceSelectionFunc: method is nil but preConsultationService.SubmitServiceSelection was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input preconsultation.SubmitServiceSelectionInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitServiceSelection.Lock()
	mock.calls.SubmitServiceSelection = append(mock.calls.SubmitServiceSelection, callInfo)
	mock.lockSubmitServiceSelection.Unlock()
	return mock.SubmitServiceSelectionFunc(ctx, input)
}

func (mock *preConsultationServiceMock) SubmitServiceSelectionCalls() []struct {
	Ctx   context.Context
	Input preconsultation.SubmitServiceSelectionInput
} {
	mock.lockSubmitServiceSelection.RLock()
	calls := mock.calls.SubmitServiceSelection
	mock.lockSubmitServiceSelection.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) AssignOfficer(ctx context.Context, input preconsultation.AssignOfficerInput) (*preconsultation.CommandResult, error) {
	if mock.AssignOfficerFunc == nil {
		panic("preConsultationServiceMock.AssignOfficerFunc: method is nil but preConsultationService.AssignOfficer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input preconsultation.AssignOfficerInput
	}{Ctx: ctx, Input: input}
	mock.lockAssignOfficer.Lock()
	mock.calls.AssignOfficer = append(mock.calls.AssignOfficer, callInfo)
	mock.lockAssignOfficer.Unlock()
	return mock.AssignOfficerFunc(ctx, input)
}

func (mock *preConsultationServiceMock) AssignOfficerCalls() []struct {
	Ctx   context.Context
	Input preconsultation.AssignOfficerInput
} {
	mock.lockAssignOfficer.RLock()
	calls := mock.calls.AssignOfficer
	mock.lockAssignOfficer.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) ReassignOfficer(ctx context.Context, input preconsultation.ReassignOfficerInput) (*preconsultation.CommandResult, error) {
	if mock.ReassignOfficerFunc == nil {
		panic("preConsultationServiceMock.ReassignOfficerFunc: method is nil but preConsultationService.ReassignOfficer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input preconsultation.ReassignOfficerInput
	}{Ctx: ctx, Input: input}
	mock.lockReassignOfficer.Lock()
	mock.calls.ReassignOfficer = append(mock.calls.ReassignOfficer, callInfo)
	mock.lockReassignOfficer.Unlock()
	return mock.ReassignOfficerFunc(ctx, input)
}

func (mock *preConsultationServiceMock) ReassignOfficerCalls() []struct {
	Ctx   context.Context
	Input preconsultation.ReassignOfficerInput
} {
	mock.lockReassignOfficer.RLock()
	calls := mock.calls.ReassignOfficer
	mock.lockReassignOfficer.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) NotifyPatient(ctx context.Context, input preconsultation.NotifyPatientInput) (*preconsultation.CommandResult, error) {
	if mock.NotifyPatientFunc == nil {
		panic("preConsultationServiceMock.NotifyPatientFunc: method is nil but preConsultationService.NotifyPatient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input preconsultation.NotifyPatientInput
	}{Ctx: ctx, Input: input}
	mock.lockNotifyPatient.Lock()
	mock.calls.NotifyPatient = append(mock.calls.NotifyPatient, callInfo)
	mock.lockNotifyPatient.Unlock()
	return mock.NotifyPatientFunc(ctx, input)
}

func (mock *preConsultationServiceMock) NotifyPatientCalls() []struct {
	Ctx   context.Context
	Input preconsultation.NotifyPatientInput
} {
	mock.lockNotifyPatient.RLock()
	calls := mock.calls.NotifyPatient
	mock.lockNotifyPatient.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) GetPreConsultation(ctx context.Context, id uuid.UUID) (*domain.PreConsultation, error) {
	if mock.GetPreConsultationFunc == nil {
		panic("preConsultationServiceMock.GetPreConsultationFunc: method is nil but preConsultationService.GetPreConsultation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPreConsultation.Lock()
	mock.calls.GetPreConsultation = append(mock.calls.GetPreConsultation, callInfo)
	mock.lockGetPreConsultation.Unlock()
	return mock.GetPreConsultationFunc(ctx, id)
}

func (mock *preConsultationServiceMock) GetPreConsultationCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPreConsultation.RLock()
	calls := mock.calls.GetPreConsultation
	mock.lockGetPreConsultation.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) ServiceDetails(ctx context.Context, caseReference string) (*preconsultation.ServiceDetails, error) {
	if mock.ServiceDetailsFunc == nil {
		panic("preConsultationServiceMock.ServiceDetailsFunc: method is nil but preConsultationService.ServiceDetails was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		CaseReference string
	}{Ctx: ctx, CaseReference: caseReference}
	mock.lockServiceDetails.Lock()
	mock.calls.ServiceDetails = append(mock.calls.ServiceDetails, callInfo)
	mock.lockServiceDetails.Unlock()
	return mock.ServiceDetailsFunc(ctx, caseReference)
}

func (mock *preConsultationServiceMock) ServiceDetailsCalls() []struct {
	Ctx           context.Context
	CaseReference string
} {
	mock.lockServiceDetails.RLock()
	calls := mock.calls.ServiceDetails
	mock.lockServiceDetails.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) ServiceList(ctx context.Context, input preconsultation.ServiceListInput) ([]preconsultation.ServiceListItem, error) {
	if mock.ServiceListFunc == nil {
		panic("preConsultationServiceMock.ServiceListFunc: method is nil but preConsultationService.ServiceList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input preconsultation.ServiceListInput
	}{Ctx: ctx, Input: input}
	mock.lockServiceList.Lock()
	mock.calls.ServiceList = append(mock.calls.ServiceList, callInfo)
	mock.lockServiceList.Unlock()
	return mock.ServiceListFunc(ctx, input)
}

func (mock *preConsultationServiceMock) ServiceListCalls() []struct {
	Ctx   context.Context
	Input preconsultation.ServiceListInput
} {
	mock.lockServiceList.RLock()
	calls := mock.calls.ServiceList
	mock.lockServiceList.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) MedicalReportDetails(ctx context.Context, caseReference string) ([]preconsultation.MedicalReportRow, error) {
	if mock.MedicalReportDetailsFunc == nil {
		panic("preConsultationServiceMock.MedicalReportDetailsFunc: method is nil but preConsultationService.MedicalReportDetails was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		CaseReference string
	}{Ctx: ctx, CaseReference: caseReference}
	mock.lockMedicalReportDetails.Lock()
	mock.calls.MedicalReportDetails = append(mock.calls.MedicalReportDetails, callInfo)
	mock.lockMedicalReportDetails.Unlock()
	return mock.MedicalReportDetailsFunc(ctx, caseReference)
}

func (mock *preConsultationServiceMock) MedicalReportDetailsCalls() []struct {
	Ctx           context.Context
	CaseReference string
} {
	mock.lockMedicalReportDetails.RLock()
	calls := mock.calls.MedicalReportDetails
	mock.lockMedicalReportDetails.RUnlock()
	return calls
}

func (mock *preConsultationServiceMock) IdentityDocumentDetails(ctx context.Context, caseReference string) ([]preconsultation.IdentityDocumentRow, error) {
	if mock.IdentityDocumentDetailsFunc == nil {
		panic("preConsultationServiceMock.IdentityDocumentDetailsFunc: method is nil but preConsultationService.IdentityDocumentDetails was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		CaseReference string
	}{Ctx: ctx, CaseReference: caseReference}
	mock.lockIdentityDocumentDetails.Lock()
	mock.calls.IdentityDocumentDetails = append(mock.calls.IdentityDocumentDetails, callInfo)
	mock.lockIdentityDocumentDetails.Unlock()
	return mock.IdentityDocumentDetailsFunc(ctx, caseReference)
}

func (mock *preConsultationServiceMock) IdentityDocumentDetailsCalls() []struct {
	Ctx           context.Context
	CaseReference string
} {
	mock.lockIdentityDocumentDetails.RLock()
	calls := mock.calls.IdentityDocumentDetails
	mock.lockIdentityDocumentDetails.RUnlock()
	return calls
}
