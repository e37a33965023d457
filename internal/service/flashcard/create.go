package flashcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

var errNothingCreated = errors.New("no flashcards were created")

// Create inserts one or more flashcards owned by the current user in a
// single statement. The batch succeeds or fails as a whole.
func (s *Service) Create(ctx context.Context, input CreateFlashcardsInput) ([]domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards := make([]domain.NewFlashcard, len(input.Cards))
	for i, c := range input.Cards {
		cards[i] = c.toNew()
	}

	created, err := s.cards.CreateMany(ctx, userID, cards)
	if errors.Is(err, domain.ErrNotFound) {
		// Only the generation_id foreign key can miss on insert.
		return nil, domain.NewValidationError("generation_id", "generation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("create flashcards: %w", err)
	}
	if len(created) == 0 {
		return nil, errNothingCreated
	}

	s.log.InfoContext(ctx, "flashcards created",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}
