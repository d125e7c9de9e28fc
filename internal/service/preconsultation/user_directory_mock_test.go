package preconsultation

import (
	"context"
	"sync"
)

var _ userDirectory = &userDirectoryMock{}

type userDirectoryMock struct {
	ListUsersByRoleFunc func(ctx context.Context, role string) ([]string, error)

	calls struct {
		ListUsersByRole []struct {
			Ctx  context.Context
			Role string
		}
	}
	lockListUsersByRole sync.RWMutex
}

func (mock *userDirectoryMock) ListUsersByRole(ctx context.Context, role string) ([]string, error) {
	if mock.ListUsersByRoleFunc == nil {
		panic("userDirectoryMock.ListUsersByRoleFunc: method is nil but userDirectory.ListUsersByRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Role string
	}{Ctx: ctx, Role: role}
	mock.lockListUsersByRole.Lock()
	mock.calls.ListUsersByRole = append(mock.calls.ListUsersByRole, callInfo)
	mock.lockListUsersByRole.Unlock()
	return mock.ListUsersByRoleFunc(ctx, role)
}

func (mock *userDirectoryMock) ListUsersByRoleCalls() []struct {
	Ctx  context.Context
	Role string
} {
	mock.lockListUsersByRole.RLock()
	calls := mock.calls.ListUsersByRole
	mock.lockListUsersByRole.RUnlock()
	return calls
}
