package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/tenxcards-backend/internal/service/generation"
)

var _ flashcardService = &flashcardServiceMock{}

type flashcardServiceMock struct {
	CreateFunc func(ctx context.Context, input flashcard.CreateFlashcardsInput) ([]domain.Flashcard, error)
	ListFunc   func(ctx context.Context, input flashcard.ListFlashcardsInput) (flashcard.ListResult, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)
	UpdateFunc func(ctx context.Context, input flashcard.UpdateFlashcardInput) (domain.Flashcard, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Input flashcard.CreateFlashcardsInput
		}
		List []struct {
			Input flashcard.ListFlashcardsInput
		}
		Get []struct {
			ID uuid.UUID
		}
		Update []struct {
			Input flashcard.UpdateFlashcardInput
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *flashcardServiceMock) Create(ctx context.Context, input flashcard.CreateFlashcardsInput) ([]domain.Flashcard, error) {
	if mock.CreateFunc == nil {
		panic("flashcardServiceMock.CreateFunc: method is nil but flashcardService.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Input flashcard.CreateFlashcardsInput
	}{input})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *flashcardServiceMock) CreateCalls() []struct {
	Input flashcard.CreateFlashcardsInput
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *flashcardServiceMock) List(ctx context.Context, input flashcard.ListFlashcardsInput) (flashcard.ListResult, error) {
	if mock.ListFunc == nil {
		panic("flashcardServiceMock.ListFunc: method is nil but flashcardService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Input flashcard.ListFlashcardsInput
	}{input})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *flashcardServiceMock) ListCalls() []struct {
	Input flashcard.ListFlashcardsInput
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *flashcardServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Flashcard, error) {
	if mock.GetFunc == nil {
		panic("flashcardServiceMock.GetFunc: method is nil but flashcardService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		ID uuid.UUID
	}{id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *flashcardServiceMock) GetCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *flashcardServiceMock) Update(ctx context.Context, input flashcard.UpdateFlashcardInput) (domain.Flashcard, error) {
	if mock.UpdateFunc == nil {
		panic("flashcardServiceMock.UpdateFunc: method is nil but flashcardService.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Input flashcard.UpdateFlashcardInput
	}{input})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *flashcardServiceMock) UpdateCalls() []struct {
	Input flashcard.UpdateFlashcardInput
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *flashcardServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("flashcardServiceMock.DeleteFunc: method is nil but flashcardService.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ID uuid.UUID
	}{id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *flashcardServiceMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	GenerateFunc     func(ctx context.Context, input generation.GenerateInput) (generation.GenerateResult, error)
	UpdateStatsFunc  func(ctx context.Context, input generation.UpdateStatsInput) (domain.Generation, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (domain.Generation, error)
	ListFunc         func(ctx context.Context, input generation.ListInput) (generation.ListResult, error)
	RecentErrorsFunc func(ctx context.Context, limit int) ([]domain.GenerationErrorLog, error)

	calls struct {
		Generate []struct {
			Input generation.GenerateInput
		}
		UpdateStats []struct {
			Input generation.UpdateStatsInput
		}
		Get []struct {
			ID uuid.UUID
		}
		List []struct {
			Input generation.ListInput
		}
		RecentErrors []struct {
			Limit int
		}
	}
	lockGenerate     sync.RWMutex
	lockUpdateStats  sync.RWMutex
	lockGet          sync.RWMutex
	lockList         sync.RWMutex
	lockRecentErrors sync.RWMutex
}

func (mock *generationServiceMock) Generate(ctx context.Context, input generation.GenerateInput) (generation.GenerateResult, error) {
	if mock.GenerateFunc == nil {
		panic("generationServiceMock.GenerateFunc: method is nil but generationService.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct {
		Input generation.GenerateInput
	}{input})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *generationServiceMock) GenerateCalls() []struct {
	Input generation.GenerateInput
} {
	mock.lockGenerate.RLock()
	defer mock.lockGenerate.RUnlock()
	return mock.calls.Generate
}

func (mock *generationServiceMock) UpdateStats(ctx context.Context, input generation.UpdateStatsInput) (domain.Generation, error) {
	if mock.UpdateStatsFunc == nil {
		panic("generationServiceMock.UpdateStatsFunc: method is nil but generationService.UpdateStats was just called")
	}
	mock.lockUpdateStats.Lock()
	mock.calls.UpdateStats = append(mock.calls.UpdateStats, struct {
		Input generation.UpdateStatsInput
	}{input})
	mock.lockUpdateStats.Unlock()
	return mock.UpdateStatsFunc(ctx, input)
}

func (mock *generationServiceMock) UpdateStatsCalls() []struct {
	Input generation.UpdateStatsInput
} {
	mock.lockUpdateStats.RLock()
	defer mock.lockUpdateStats.RUnlock()
	return mock.calls.UpdateStats
}

func (mock *generationServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Generation, error) {
	if mock.GetFunc == nil {
		panic("generationServiceMock.GetFunc: method is nil but generationService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		ID uuid.UUID
	}{id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *generationServiceMock) GetCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *generationServiceMock) List(ctx context.Context, input generation.ListInput) (generation.ListResult, error) {
	if mock.ListFunc == nil {
		panic("generationServiceMock.ListFunc: method is nil but generationService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Input generation.ListInput
	}{input})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *generationServiceMock) ListCalls() []struct {
	Input generation.ListInput
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *generationServiceMock) RecentErrors(ctx context.Context, limit int) ([]domain.GenerationErrorLog, error) {
	if mock.RecentErrorsFunc == nil {
		panic("generationServiceMock.RecentErrorsFunc: method is nil but generationService.RecentErrors was just called")
	}
	mock.lockRecentErrors.Lock()
	mock.calls.RecentErrors = append(mock.calls.RecentErrors, struct {
		Limit int
	}{limit})
	mock.lockRecentErrors.Unlock()
	return mock.RecentErrorsFunc(ctx, limit)
}

func (mock *generationServiceMock) RecentErrorsCalls() []struct {
	Limit int
} {
	mock.lockRecentErrors.RLock()
	defer mock.lockRecentErrors.RUnlock()
	return mock.calls.RecentErrors
}
