package flashcard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

// List returns one page of the current user's flashcards, newest first.
// A search with no matches yields an empty page, not an error.
func (s *Service) List(ctx context.Context, input ListFlashcardsInput) (ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ListResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	filter := domain.FlashcardFilter{
		Limit:  input.Limit,
		Offset: domain.Offset(input.Page, input.Limit),
	}
	if input.Search != nil {
		if term := strings.TrimSpace(*input.Search); term != "" {
			filter.Search = &term
		}
	}

	items, total, err := s.cards.List(ctx, userID, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("list flashcards: %w", err)
	}

	return ListResult{
		Items:      items,
		Pagination: domain.NewPagination(total, input.Page, input.Limit),
	}, nil
}

// Get returns a single flashcard owned by the current user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	card, err := s.cards.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("get flashcard: %w", err)
	}

	return card, nil
}
