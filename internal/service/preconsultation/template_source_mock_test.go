package preconsultation

import (
	"context"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"sync"
)

var _ templateSource = &templateSourceMock{}

type templateSourceMock struct {
	GetTemplateFunc func(ctx context.Context, t domain.NotificationType) (*domain.NotificationTemplate, error)

	calls struct {
		GetTemplate []struct {
			Ctx context.Context
			T   domain.NotificationType
		}
	}
	lockGetTemplate sync.RWMutex
}

func (mock *templateSourceMock) GetTemplate(ctx context.Context, t domain.NotificationType) (*domain.NotificationTemplate, error) {
	if mock.GetTemplateFunc == nil {
		panic("templateSourceMock.GetTemplateFunc: method is nil but templateSource.GetTemplate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.NotificationType
	}{Ctx: ctx, T: t}
	mock.lockGetTemplate.Lock()
	mock.calls.GetTemplate = append(mock.calls.GetTemplate, callInfo)
	mock.lockGetTemplate.Unlock()
	return mock.GetTemplateFunc(ctx, t)
}

func (mock *templateSourceMock) GetTemplateCalls() []struct {
	Ctx context.Context
	T   domain.NotificationType
} {
	mock.lockGetTemplate.RLock()
	calls := mock.calls.GetTemplate
	mock.lockGetTemplate.RUnlock()
	return calls
}
