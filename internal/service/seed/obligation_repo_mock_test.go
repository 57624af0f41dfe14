package seed

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
)

var _ obligationRepo = &obligationRepoMock{}

type obligationRepoMock struct {
	ListByLoanFunc func(ctx context.Context, loanID int64) ([]domain.Obligation, error)
	CreateFunc     func(ctx context.Context, o *domain.Obligation) (*domain.Obligation, error)

	calls struct {
		ListByLoan []struct {
			Ctx    context.Context
			LoanID int64
		}
		Create []struct {
			Ctx context.Context
			O   *domain.Obligation
		}
	}
	lockListByLoan sync.RWMutex
	lockCreate     sync.RWMutex
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
