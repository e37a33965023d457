// Package flashcard implements the flashcard CRUD use cases. Every operation
// is scoped to the user attached to the context.
package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

// Pagination defaults and bounds for listing.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type flashcardRepo interface {
	CreateMany(ctx context.Context, userID uuid.UUID, cards []domain.NewFlashcard) ([]domain.Flashcard, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Flashcard, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.FlashcardPatch) (domain.Flashcard, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides flashcard management operations.
type Service struct {
	cards flashcardRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new flashcard service.
func NewService(
	log *slog.Logger,
	cards flashcardRepo,
	tx txManager,
) *Service {
	return &Service{
		cards: cards,
		tx:    tx,
		log:   log.With("service", "flashcard"),
	}
}
