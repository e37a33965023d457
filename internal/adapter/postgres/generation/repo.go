// Package generation implements the Generation repository using PostgreSQL.
package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

const table = "generations"

var columns = []string{
	"id", "user_id", "model", "source_text_hash", "source_text_length", "generated_count",
	"accepted_unedited_count", "accepted_edited_count", "rejected_count",
	"generation_duration_ms", "created_at", "updated_at",
}

// Repo provides generation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new generation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                    uuid.UUID `db:"id"`
	UserID                uuid.UUID `db:"user_id"`
	Model                 *string   `db:"model"`
	SourceTextHash        string    `db:"source_text_hash"`
	SourceTextLength      int       `db:"source_text_length"`
	GeneratedCount        int       `db:"generated_count"`
	AcceptedUneditedCount *int      `db:"accepted_unedited_count"`
	AcceptedEditedCount   *int      `db:"accepted_edited_count"`
	RejectedCount         *int      `db:"rejected_count"`
	GenerationDurationMs  int64     `db:"generation_duration_ms"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Generation {
	return domain.Generation{
		ID:                    r.ID,
		UserID:                r.UserID,
		Model:                 r.Model,
		SourceTextHash:        r.SourceTextHash,
		SourceTextLength:      r.SourceTextLength,
		GeneratedCount:        r.GeneratedCount,
		AcceptedUneditedCount: r.AcceptedUneditedCount,
		AcceptedEditedCount:   r.AcceptedEditedCount,
		RejectedCount:         r.RejectedCount,
		GenerationDuration:    time.Duration(r.GenerationDurationMs) * time.Millisecond,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a generation by id, scoped to the owner.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error) {
	return r.get(ctx, userID, id, "")
}

// GetForUpdate is GetByID with a row lock. It must run inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (domain.Generation, error) {
	return r.get(ctx, userID, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, userID, id uuid.UUID, suffix string) (domain.Generation, error) {
	sel := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	if suffix != "" {
		sel = sel.Suffix(suffix)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return domain.Generation{}, fmt.Errorf("build get generation query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Generation{}, postgres.MapError(err, "generation", id)
	}
	if len(rows) == 0 {
		return domain.Generation{}, fmt.Errorf("generation %s: %w", id, domain.ErrNotFound)
	}

	return rows[0].toDomain(), nil
}

// List returns the owner's generations newest first with the total count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Generation, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count generations query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count generations: %w", err)
	}
	if total == 0 {
		return []domain.Generation{}, 0, nil
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list generations query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list generations: %w", err)
	}

	out := make([]domain.Generation, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a generation record. Review statistics start as NULL.
func (r *Repo) Create(ctx context.Context, g domain.Generation) (domain.Generation, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "model", "source_text_hash", "source_text_length", "generated_count", "generation_duration_ms").
		Values(g.UserID, g.Model, g.SourceTextHash, g.SourceTextLength, g.GeneratedCount, g.GenerationDuration.Milliseconds()).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Generation{}, fmt.Errorf("build insert generation query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Generation{}, postgres.MapError(err, "generation", uuid.Nil)
	}
	if len(rows) == 0 {
		return domain.Generation{}, fmt.Errorf("insert generation: no row returned")
	}

	return rows[0].toDomain(), nil
}

// UpdateStats stores the review outcome counters.
// Returns domain.ErrNotFound if the generation does not exist or belongs to another user.
func (r *Repo) UpdateStats(ctx context.Context, userID, id uuid.UUID, stats domain.GenerationStats) (domain.Generation, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("accepted_unedited_count", stats.AcceptedUnedited).
		Set("accepted_edited_count", stats.AcceptedEdited).
		Set("rejected_count", stats.Rejected).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Generation{}, fmt.Errorf("build update generation query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Generation{}, postgres.MapError(err, "generation", id)
	}
	if len(rows) == 0 {
		return domain.Generation{}, fmt.Errorf("generation %s: %w", id, domain.ErrNotFound)
	}

	return rows[0].toDomain(), nil
}
