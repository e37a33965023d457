package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	CreateManyFunc func(ctx context.Context, userID uuid.UUID, cards []domain.NewFlashcard) ([]domain.Flashcard, error)
	GetByIDFunc    func(ctx context.Context, userID, id uuid.UUID) (domain.Flashcard, error)
	ListFunc       func(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error)
	UpdateFunc     func(ctx context.Context, userID, id uuid.UUID, patch domain.FlashcardPatch) (domain.Flashcard, error)
	DeleteFunc     func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		CreateMany []struct {
			UserID uuid.UUID
			Cards  []domain.NewFlashcard
		}
		GetByID []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.FlashcardFilter
		}
		Update []struct {
			UserID uuid.UUID
			ID     uuid.UUID
			Patch  domain.FlashcardPatch
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCreateMany sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *flashcardRepoMock) CreateMany(ctx context.Context, userID uuid.UUID, cards []domain.NewFlashcard) ([]domain.Flashcard, error) {
	if mock.CreateManyFunc == nil {
		panic("flashcardRepoMock.CreateManyFunc: method is nil but flashcardRepo.CreateMany was just called")
	}
	mock.lockCreateMany.Lock()
	mock.calls.CreateMany = append(mock.calls.CreateMany, struct {
		UserID uuid.UUID
		Cards  []domain.NewFlashcard
	}{userID, cards})
	mock.lockCreateMany.Unlock()
	return mock.CreateManyFunc(ctx, userID, cards)
}

func (mock *flashcardRepoMock) CreateManyCalls() []struct {
	UserID uuid.UUID
	Cards  []domain.NewFlashcard
} {
	mock.lockCreateMany.RLock()
	defer mock.lockCreateMany.RUnlock()
	return mock.calls.CreateMany
}

func (mock *flashcardRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Flashcard, error) {
	if mock.GetByIDFunc == nil {
		panic("flashcardRepoMock.GetByIDFunc: method is nil but flashcardRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{userID, id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *flashcardRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *flashcardRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error) {
	if mock.ListFunc == nil {
		panic("flashcardRepoMock.ListFunc: method is nil but flashcardRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID uuid.UUID
		Filter domain.FlashcardFilter
	}{userID, filter})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *flashcardRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.FlashcardFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *flashcardRepoMock) Update(ctx context.Context, userID, id uuid.UUID, patch domain.FlashcardPatch) (domain.Flashcard, error) {
	if mock.UpdateFunc == nil {
		panic("flashcardRepoMock.UpdateFunc: method is nil but flashcardRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID uuid.UUID
		ID     uuid.UUID
		Patch  domain.FlashcardPatch
	}{userID, id, patch})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, patch)
}

func (mock *flashcardRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Patch  domain.FlashcardPatch
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *flashcardRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("flashcardRepoMock.DeleteFunc: method is nil but flashcardRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{userID, id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *flashcardRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

// txManagerMock runs fn inline.
type txManagerMock struct {
	mu    sync.Mutex
	calls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}

func (m *txManagerMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
