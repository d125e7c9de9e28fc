package preconsultation

import (
	"context"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendFunc func(ctx context.Context, req domain.NotificationRequest) (string, error)

	calls struct {
		Send []struct {
			Ctx context.Context
			Req domain.NotificationRequest
		}
	}
	lockSend sync.RWMutex
}

func (mock *notifierMock) Send(ctx context.Context, req domain.NotificationRequest) (string, error) {
	if mock.SendFunc == nil {
		panic("notifierMock.SendFunc: method is nil but notifier.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.NotificationRequest
	}{Ctx: ctx, Req: req}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, req)
}

func (mock *notifierMock) SendCalls() []struct {
	Ctx context.Context
	Req domain.NotificationRequest
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
