package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

// Update changes the provided fields of a flashcard owned by the current user.
// Existence and ownership are checked before writing.
func (s *Service) Update(ctx context.Context, input UpdateFlashcardInput) (domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	patch := input.patch()
	if patch.IsEmpty() {
		return domain.Flashcard{}, domain.NewBadRequestError("at least one field required (front or back)")
	}

	var updated domain.Flashcard
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.cards.GetByID(ctx, userID, input.ID); err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}

		var err error
		updated, err = s.cards.Update(ctx, userID, input.ID, patch)
		if err != nil {
			return fmt.Errorf("update flashcard: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Flashcard{}, err
	}

	s.log.InfoContext(ctx, "flashcard updated",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", input.ID.String()),
	)

	return updated, nil
}
