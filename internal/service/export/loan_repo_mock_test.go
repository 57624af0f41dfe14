package export

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
)

var _ loanRepo = &loanRepoMock{}

type loanRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Loan, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *loanRepoMock) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	if mock.GetByIDFunc == nil {
		panic("loanRepoMock.GetByIDFunc: method is nil but loanRepo.GetByID was just called")
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

func (mock *loanRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
