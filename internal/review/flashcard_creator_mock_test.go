package review

import (
	"context"
	"sync"

	"github.com/heartmarshall/tenxcards-backend/internal/client"
)

type flashcardCreatorMock struct {
	CreateFlashcardsFunc func(ctx context.Context, cards []client.CreateFlashcardRequest) ([]client.Flashcard, error)

	mu    sync.RWMutex
	calls struct {
		CreateFlashcards []struct {
			Cards []client.CreateFlashcardRequest
		}
	}
}

func (m *flashcardCreatorMock) CreateFlashcards(ctx context.Context, cards []client.CreateFlashcardRequest) ([]client.Flashcard, error) {
	if m.CreateFlashcardsFunc == nil {
		panic("flashcardCreatorMock.CreateFlashcardsFunc: method is nil but flashcardCreator.CreateFlashcards was just called")
	}
	m.mu.Lock()
	m.calls.CreateFlashcards = append(m.calls.CreateFlashcards, struct {
		Cards []client.CreateFlashcardRequest
	}{cards})
	m.mu.Unlock()
	return m.CreateFlashcardsFunc(ctx, cards)
}

func (m *flashcardCreatorMock) CreateFlashcardsCalls() []struct {
	Cards []client.CreateFlashcardRequest
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.CreateFlashcards
}
