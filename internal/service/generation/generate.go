package generation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/pkg/ctxutil"
)

// Generate asks the AI provider for flashcard candidates from the source text
// and records the generation. Provider failures are written to the error log
// and returned as *domain.AIError.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (GenerateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return GenerateResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return GenerateResult{}, err
	}

	model := s.cfg.DefaultModel
	if input.Model != nil {
		model = *input.Model
	}
	hash := hashSourceText(input.SourceText)
	length := utf8.RuneCountInString(input.SourceText)

	start := s.now()
	candidates, err := s.complete(ctx, model, input.SourceText)
	duration := s.now().Sub(start)
	if err != nil {
		s.recordFailure(ctx, userID, model, hash, length, err)
		return GenerateResult{}, err
	}

	gen, err := s.generations.Create(ctx, domain.Generation{
		UserID:             userID,
		Model:              &model,
		SourceTextHash:     hash,
		SourceTextLength:   length,
		GeneratedCount:     len(candidates),
		GenerationDuration: duration,
	})
	if err != nil {
		return GenerateResult{}, fmt.Errorf("create generation: %w", err)
	}

	s.log.InfoContext(ctx, "generation created",
		slog.String("user_id", userID.String()),
		slog.String("generation_id", gen.ID.String()),
		slog.String("model", model),
		slog.Int("generated_count", len(candidates)),
		slog.Duration("duration", duration),
	)

	return GenerateResult{Generation: gen, Candidates: candidates}, nil
}

func (s *Service) complete(ctx context.Context, model, sourceText string) ([]domain.CandidateProposal, error) {
	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	content, err := s.ai.Complete(callCtx, model, buildPrompt(sourceText))
	if err != nil {
		return nil, classify(err)
	}

	candidates, err := parseCandidates(content)
	if err != nil {
		return nil, domain.NewAIError(domain.AIErrorInvalidOutput, err)
	}
	return candidates, nil
}

// classify maps a provider error onto an *domain.AIError.
func classify(err error) *domain.AIError {
	var aiErr *domain.AIError
	if errors.As(err, &aiErr) {
		return aiErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewAIError(domain.AIErrorTimeout, err)
	}
	return domain.NewAIError(domain.AIErrorNetwork, err)
}

// recordFailure writes the error log entry. A failed write is logged and
// otherwise ignored.
func (s *Service) recordFailure(ctx context.Context, userID uuid.UUID, model, hash string, length int, cause error) {
	code := domain.AIErrorNetwork
	var aiErr *domain.AIError
	if errors.As(cause, &aiErr) {
		code = aiErr.Code
	}

	s.log.WarnContext(ctx, "generation failed",
		slog.String("user_id", userID.String()),
		slog.String("model", model),
		slog.String("error_code", code),
		slog.String("error", cause.Error()),
	)

	// The request context may already be past its deadline.
	logCtx := context.WithoutCancel(ctx)
	err := s.errorLogs.Create(logCtx, domain.GenerationErrorLog{
		UserID:           userID,
		Model:            model,
		SourceTextHash:   hash,
		SourceTextLength: length,
		ErrorCode:        code,
		ErrorMessage:     cause.Error(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "write generation error log",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func hashSourceText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
