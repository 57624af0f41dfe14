package export

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
)

var _ obligationRepo = &obligationRepoMock{}

type obligationRepoMock struct {
	ListByLoanFunc func(ctx context.Context, loanID int64) ([]domain.Obligation, error)

	calls struct {
		ListByLoan []struct {
			Ctx    context.Context
			LoanID int64
		}
	}
	lockListByLoan sync.RWMutex
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
