package seed

import (
	"context"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"sync"
)

var _ datasetStore = &datasetStoreMock{}

type datasetStoreMock struct {
	ReplaceDatasetFunc func(ctx context.Context, ds domain.Dataset) error

	calls struct {
		ReplaceDataset []struct {
			Ctx context.Context
			Ds  domain.Dataset
		}
	}
	lockReplaceDataset sync.RWMutex
}

func (mock *datasetStoreMock) ReplaceDataset(ctx context.Context, ds domain.Dataset) error {
	if mock.ReplaceDatasetFunc == nil {
		panic("datasetStoreMock.ReplaceDatasetFunc: method is nil but datasetStore.ReplaceDataset was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ds  domain.Dataset
	}{Ctx: ctx, Ds: ds}
	mock.lockReplaceDataset.Lock()
	mock.calls.ReplaceDataset = append(mock.calls.ReplaceDataset, callInfo)
	mock.lockReplaceDataset.Unlock()
	return mock.ReplaceDatasetFunc(ctx, ds)
}

func (mock *datasetStoreMock) ReplaceDatasetCalls() []struct {
	Ctx context.Context
	Ds  domain.Dataset
} {
	mock.lockReplaceDataset.RLock()
	calls := mock.calls.ReplaceDataset
	mock.lockReplaceDataset.RUnlock()
	return calls
}
