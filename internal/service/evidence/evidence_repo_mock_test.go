package evidence

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
)

var _ evidenceRepo = &evidenceRepoMock{}

type evidenceRepoMock struct {
	ListByObligationFunc func(ctx context.Context, obligationID int64) ([]domain.Evidence, error)
	CreateFunc           func(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error)

	calls struct {
		ListByObligation []struct {
			Ctx          context.Context
			ObligationID int64
		}
		Create []struct {
			Ctx context.Context
			E   *domain.Evidence
		}
	}
	lockListByObligation sync.RWMutex
	lockCreate           sync.RWMutex
}

func (mock *evidenceRepoMock) ListByObligation(ctx context.Context, obligationID int64) ([]domain.Evidence, error) {
	if mock.ListByObligationFunc == nil {
		panic("evidenceRepoMock.ListByObligationFunc: method is nil but evidenceRepo.ListByObligation was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ObligationID int64
	}{Ctx: ctx, ObligationID: obligationID}
	mock.lockListByObligation.Lock()
	mock.calls.ListByObligation = append(mock.calls.ListByObligation, callInfo)
	mock.lockListByObligation.Unlock()
	return mock.ListByObligationFunc(ctx, obligationID)
}

func (mock *evidenceRepoMock) ListByObligationCalls() []struct {
	Ctx          context.Context
	ObligationID int64
} {
	mock.lockListByObligation.RLock()
	calls := mock.calls.ListByObligation
	mock.lockListByObligation.RUnlock()
	return calls
}

func (mock *evidenceRepoMock) Create(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error) {
	if mock.CreateFunc == nil {
		panic("evidenceRepoMock.CreateFunc: method is nil but evidenceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Evidence
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *evidenceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Evidence
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
