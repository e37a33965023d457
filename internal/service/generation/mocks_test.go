package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

var (
	_ aiProvider     = &aiProviderMock{}
	_ generationRepo = &generationRepoMock{}
	_ errorLogRepo   = &errorLogRepoMock{}
)

type aiProviderMock struct {
	CompleteFunc func(ctx context.Context, model, prompt string) (string, error)

	calls struct {
		Complete []struct {
			Model  string
			Prompt string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *aiProviderMock) Complete(ctx context.Context, model, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("aiProviderMock.CompleteFunc: method is nil but aiProvider.Complete was just called")
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, struct {
		Model  string
		Prompt string
	}{model, prompt})
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, model, prompt)
}

func (mock *aiProviderMock) CompleteCalls() []struct {
	Model  string
	Prompt string
} {
	mock.lockComplete.RLock()
	defer mock.lockComplete.RUnlock()
	return mock.calls.Complete
}

type generationRepoMock struct {
	CreateFunc       func(ctx context.Context, g domain.Generation) (domain.Generation, error)
	GetByIDFunc      func(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error)
	GetForUpdateFunc func(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Generation, int, error)
	UpdateStatsFunc  func(ctx context.Context, userID, id uuid.UUID, stats domain.GenerationStats) (domain.Generation, error)

	calls struct {
		Create      []domain.Generation
		UpdateStats []domain.GenerationStats
		List        []struct{ Limit, Offset int }
	}
	lock sync.RWMutex
}

func (mock *generationRepoMock) Create(ctx context.Context, g domain.Generation) (domain.Generation, error) {
	if mock.CreateFunc == nil {
		panic("generationRepoMock.CreateFunc: method is nil but generationRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, g)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *generationRepoMock) CreateCalls() []domain.Generation {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *generationRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error) {
	if mock.GetByIDFunc == nil {
		panic("generationRepoMock.GetByIDFunc: method is nil but generationRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *generationRepoMock) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error) {
	if mock.GetForUpdateFunc == nil {
		panic("generationRepoMock.GetForUpdateFunc: method is nil but generationRepo.GetForUpdate was just called")
	}
	return mock.GetForUpdateFunc(ctx, userID, id)
}

func (mock *generationRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Generation, int, error) {
	if mock.ListFunc == nil {
		panic("generationRepoMock.ListFunc: method is nil but generationRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Limit, Offset int }{limit, offset})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, limit, offset)
}

func (mock *generationRepoMock) ListCalls() []struct{ Limit, Offset int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *generationRepoMock) UpdateStats(ctx context.Context, userID, id uuid.UUID, stats domain.GenerationStats) (domain.Generation, error) {
	if mock.UpdateStatsFunc == nil {
		panic("generationRepoMock.UpdateStatsFunc: method is nil but generationRepo.UpdateStats was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStats = append(mock.calls.UpdateStats, stats)
	mock.lock.Unlock()
	return mock.UpdateStatsFunc(ctx, userID, id, stats)
}

func (mock *generationRepoMock) UpdateStatsCalls() []domain.GenerationStats {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateStats
}

type errorLogRepoMock struct {
	CreateFunc     func(ctx context.Context, entry domain.GenerationErrorLog) error
	ListRecentFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GenerationErrorLog, error)

	calls struct {
		Create []domain.GenerationErrorLog
	}
	lockCreate sync.RWMutex
}

func (mock *errorLogRepoMock) Create(ctx context.Context, entry domain.GenerationErrorLog) error {
	if mock.CreateFunc == nil {
		panic("errorLogRepoMock.CreateFunc: method is nil but errorLogRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, entry)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *errorLogRepoMock) CreateCalls() []domain.GenerationErrorLog {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *errorLogRepoMock) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GenerationErrorLog, error) {
	if mock.ListRecentFunc == nil {
		panic("errorLogRepoMock.ListRecentFunc: method is nil but errorLogRepo.ListRecent was just called")
	}
	return mock.ListRecentFunc(ctx, userID, limit)
}

type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
