package evidence

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
)

var _ obligationRepo = &obligationRepoMock{}

type obligationRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Obligation, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *obligationRepoMock) GetByID(ctx context.Context, id int64) (*domain.Obligation, error) {
	if mock.GetByIDFunc == nil {
		panic("obligationRepoMock.GetByIDFunc: method is nil but obligationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *obligationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
