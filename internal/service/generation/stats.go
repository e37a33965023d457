package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

// UpdateStats stores the review outcome of a generation. The three counters
// must add up to the stored generated_count.
func (s *Service) UpdateStats(ctx context.Context, input UpdateStatsInput) (domain.Generation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Generation{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Generation{}, err
	}

	stats := input.stats()

	var updated domain.Generation
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		gen, err := s.generations.GetForUpdate(ctx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("get generation: %w", err)
		}

		if stats.Total() != gen.GeneratedCount {
			return domain.NewValidationError("counts", fmt.Sprintf(
				"sum of counts (%d) must equal generated_count (%d)", stats.Total(), gen.GeneratedCount,
			))
		}

		updated, err = s.generations.UpdateStats(ctx, userID, input.ID, stats)
		if err != nil {
			return fmt.Errorf("update generation stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Generation{}, err
	}

	s.log.InfoContext(ctx, "generation stats updated",
		slog.String("user_id", userID.String()),
		slog.String("generation_id", input.ID.String()),
		slog.Int("accepted_unedited", stats.AcceptedUnedited),
		slog.Int("accepted_edited", stats.AcceptedEdited),
		slog.Int("rejected", stats.Rejected),
	)

	return updated, nil
}
