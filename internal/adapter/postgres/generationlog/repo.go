// Package generationlog stores failed AI generation attempts.
package generationlog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

const table = "generation_error_logs"

// Repo provides generation error log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new generation error log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	Model            string    `db:"model"`
	SourceTextHash   string    `db:"source_text_hash"`
	SourceTextLength int       `db:"source_text_length"`
	ErrorCode        string    `db:"error_code"`
	ErrorMessage     string    `db:"error_message"`
	CreatedAt        time.Time `db:"created_at"`
}

// Create appends one error record.
func (r *Repo) Create(ctx context.Context, entry domain.GenerationErrorLog) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "model", "source_text_hash", "source_text_length", "error_code", "error_message").
		Values(entry.UserID, entry.Model, entry.SourceTextHash, entry.SourceTextLength, entry.ErrorCode, entry.ErrorMessage).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert generation error log query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "generation_error_log", uuid.Nil)
	}
	return nil
}

// ListRecent returns the owner's latest error records, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GenerationErrorLog, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "model", "source_text_hash", "source_text_length", "error_code", "error_message", "created_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list generation error logs query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list generation error logs: %w", err)
	}

	out := make([]domain.GenerationErrorLog, len(rows))
	for i, r := range rows {
		out[i] = domain.GenerationErrorLog{
			ID:               r.ID,
			UserID:           r.UserID,
			Model:            r.Model,
			SourceTextHash:   r.SourceTextHash,
			SourceTextLength: r.SourceTextLength,
			ErrorCode:        r.ErrorCode,
			ErrorMessage:     r.ErrorMessage,
			CreatedAt:        r.CreatedAt,
		}
	}
	return out, nil
}
