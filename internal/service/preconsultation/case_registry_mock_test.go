package preconsultation

import (
	"context"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"sync"
)

var _ caseRegistry = &caseRegistryMock{}

type caseRegistryMock struct {
	GetCaseFunc                  func(ctx context.Context, caseReference string) (*domain.Case, error)
	ListActiveCaseReferencesFunc func(ctx context.Context, caseReferences []string) ([]string, error)

	calls struct {
		GetCase []struct {
			Ctx           context.Context
			CaseReference string
		}
		ListActiveCaseReferences []struct {
			Ctx            context.Context
			CaseReferences []string
		}
	}
	lockGetCase                  sync.RWMutex
	lockListActiveCaseReferences sync.RWMutex
}

func (mock *caseRegistryMock) GetCase(ctx context.Context, caseReference string) (*domain.Case, error) {
	if mock.GetCaseFunc == nil {
		panic("caseRegistryMock.GetCaseFunc: method is nil but caseRegistry.GetCase was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		CaseReference string
	}{Ctx: ctx, CaseReference: caseReference}
	mock.lockGetCase.Lock()
	mock.calls.GetCase = append(mock.calls.GetCase, callInfo)
	mock.lockGetCase.Unlock()
	return mock.GetCaseFunc(ctx, caseReference)
}

func (mock *caseRegistryMock) GetCaseCalls() []struct {
	Ctx           context.Context
	CaseReference string
} {
	mock.lockGetCase.RLock()
	calls := mock.calls.GetCase
	mock.lockGetCase.RUnlock()
	return calls
}

func (mock *caseRegistryMock) ListActiveCaseReferences(ctx context.Context, caseReferences []string) ([]string, error) {
	if mock.ListActiveCaseReferencesFunc == nil {
		panic("caseRegistryMock.ListActiveCaseReferencesFunc: method is nil but caseRegistry.ListActiveCaseReferences was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		CaseReferences []string
	}{Ctx: ctx, CaseReferences: caseReferences}
	mock.lockListActiveCaseReferences.Lock()
	mock.calls.ListActiveCaseReferences = append(mock.calls.ListActiveCaseReferences, callInfo)
	mock.lockListActiveCaseReferences.Unlock()
	return mock.ListActiveCaseReferencesFunc(ctx, caseReferences)
}

func (mock *caseRegistryMock) ListActiveCaseReferencesCalls() []struct {
	Ctx            context.Context
	CaseReferences []string
} {
	mock.lockListActiveCaseReferences.RLock()
	calls := mock.calls.ListActiveCaseReferences
	mock.lockListActiveCaseReferences.RUnlock()
	return calls
}
