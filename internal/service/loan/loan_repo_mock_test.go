package loan

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
)

var _ loanRepo = &loanRepoMock{}

type loanRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Loan, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Loan, error)
	CreateFunc  func(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		Create []struct {
			Ctx  context.Context
			Loan *domain.Loan
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *loanRepoMock) List(ctx context.Context) ([]domain.Loan, error) {
	if mock.ListFunc == nil {
		panic("loanRepoMock.ListFunc: method is nil but loanRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *loanRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
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

func (mock *loanRepoMock) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	if mock.CreateFunc == nil {
		panic("loanRepoMock.CreateFunc: method is nil but loanRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Loan *domain.Loan
	}{Ctx: ctx, Loan: loan}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, loan)
}

func (mock *loanRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Loan *domain.Loan
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
