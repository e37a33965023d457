package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

// Get returns a generation owned by the current user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Generation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Generation{}, domain.ErrUnauthorized
	}

	gen, err := s.generations.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Generation{}, fmt.Errorf("get generation: %w", err)
	}
	return gen, nil
}

// List returns one page of the current user's generations, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ListResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	items, total, err := s.generations.List(ctx, userID, input.Limit, domain.Offset(input.Page, input.Limit))
	if err != nil {
		return ListResult{}, fmt.Errorf("list generations: %w", err)
	}

	return ListResult{
		Items:      items,
		Pagination: domain.NewPagination(total, input.Page, input.Limit),
	}, nil
}

// RecentErrors returns the current user's latest failed generation attempts.
func (s *Service) RecentErrors(ctx context.Context, limit int) ([]domain.GenerationErrorLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit < 1 || limit > MaxLimit {
		return nil, domain.NewValidationError("limit", "must be between 1 and 100")
	}

	entries, err := s.errorLogs.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list generation errors: %w", err)
	}
	return entries, nil
}
