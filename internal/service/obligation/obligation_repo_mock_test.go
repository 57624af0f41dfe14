package obligation

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
	"time"
)

var _ obligationRepo = &obligationRepoMock{}

type obligationRepoMock struct {
	ListByLoanFunc func(ctx context.Context, loanID int64) ([]domain.Obligation, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Obligation, error)
	CreateFunc     func(ctx context.Context, o *domain.Obligation) (*domain.Obligation, error)
	UpdateFunc     func(ctx context.Context, id int64, patch domain.ObligationPatch, now time.Time) (*domain.Obligation, error)
	DeleteFunc     func(ctx context.Context, id int64) (int, error)

	calls struct {
		ListByLoan []struct {
			Ctx    context.Context
			LoanID int64
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		Create []struct {
			Ctx context.Context
			O   *domain.Obligation
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Patch domain.ObligationPatch
			Now   time.Time
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockListByLoan sync.RWMutex
	lockGetByID    sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *obligationRepoMock) ListByLoan(ctx context.Context, loanID int64) ([]domain.Obligation, error) {
	if mock.ListByLoanFunc == nil {
		panic("obligationRepoMock.ListByLoanFunc: method is nil but obligationRepo.ListByLoan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LoanID int64
	}{Ctx: ctx, LoanID: loanID}
	mock.lockListByLoan.Lock()
	mock.calls.ListByLoan = append(mock.calls.ListByLoan, callInfo)
	mock.lockListByLoan.Unlock()
	return mock.ListByLoanFunc(ctx, loanID)
}

func (mock *obligationRepoMock) ListByLoanCalls() []struct {
	Ctx    context.Context
	LoanID int64
} {
	mock.lockListByLoan.RLock()
	calls := mock.calls.ListByLoan
	mock.lockListByLoan.RUnlock()
	return calls
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

func (mock *obligationRepoMock) Create(ctx context.Context, o *domain.Obligation) (*domain.Obligation, error) {
	if mock.CreateFunc == nil {
		panic("obligationRepoMock.CreateFunc: method is nil but obligationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   *domain.Obligation
	}{Ctx: ctx, O: o}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

func (mock *obligationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	O   *domain.Obligation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *obligationRepoMock) Update(ctx context.Context, id int64, patch domain.ObligationPatch, now time.Time) (*domain.Obligation, error) {
	if mock.UpdateFunc == nil {
		panic("obligationRepoMock.UpdateFunc: method is nil but obligationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Patch domain.ObligationPatch
		Now   time.Time
	}{Ctx: ctx, Id: id, Patch: patch, Now: now}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch, now)
}

func (mock *obligationRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Patch domain.ObligationPatch
	Now   time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *obligationRepoMock) Delete(ctx context.Context, id int64) (int, error) {
	if mock.DeleteFunc == nil {
		panic("obligationRepoMock.DeleteFunc: method is nil but obligationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *obligationRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
