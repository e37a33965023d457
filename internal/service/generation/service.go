// Package generation implements AI-assisted flashcard generation and the
// reporting of review statistics for a generation.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

// Pagination defaults for listing generations.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// aiProvider returns the raw text of the first completion choice.
type aiProvider interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

type generationRepo interface {
	Create(ctx context.Context, g domain.Generation) (domain.Generation, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error)
	GetForUpdate(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Generation, int, error)
	UpdateStats(ctx context.Context, userID, id uuid.UUID, stats domain.GenerationStats) (domain.Generation, error)
}

type errorLogRepo interface {
	Create(ctx context.Context, entry domain.GenerationErrorLog) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GenerationErrorLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds generation settings.
type Config struct {
	DefaultModel string
	Timeout      time.Duration
}

// Service provides generation operations.
type Service struct {
	ai          aiProvider
	generations generationRepo
	errorLogs   errorLogRepo
	tx          txManager
	cfg         Config
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new generation service.
func NewService(
	log *slog.Logger,
	ai aiProvider,
	generations generationRepo,
	errorLogs errorLogRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		ai:          ai,
		generations: generations,
		errorLogs:   errorLogs,
		tx:          tx,
		cfg:         cfg,
		log:         log.With("service", "generation"),
		now:         time.Now,
	}
}
