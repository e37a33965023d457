package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

// Delete removes a flashcard owned by the current user.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.cards.GetByID(ctx, userID, id); err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}
		if err := s.cards.Delete(ctx, userID, id); err != nil {
			return fmt.Errorf("delete flashcard: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "flashcard deleted",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", id.String()),
	)

	return nil
}
