// Package flashcard implements the Flashcard repository using PostgreSQL.
// Every query is scoped by the owner's user id.
package flashcard

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

const table = "flashcards"

var columns = []string{
	"id", "user_id", "front", "back", "source", "generation_id", "created_at", "updated_at",
}

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Front        string     `db:"front"`
	Back         string     `db:"back"`
	Source       string     `db:"source"`
	GenerationID *uuid.UUID `db:"generation_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Flashcard {
	return domain.Flashcard{
		ID:           r.ID,
		UserID:       r.UserID,
		Front:        r.Front,
		Back:         r.Back,
		Source:       domain.FlashcardSource(r.Source),
		GenerationID: r.GenerationID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomain(rows []row) []domain.Flashcard {
	out := make([]domain.Flashcard, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a flashcard by id, scoped to the owner.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Flashcard, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build get flashcard query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id)
	}
	if len(rows) == 0 {
		return domain.Flashcard{}, fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}

	return rows[0].toDomain(), nil
}

// List returns the owner's flashcards newest first, with the total number of
// matches before pagination. Search matches front OR back case-insensitively.
// An empty result is an empty slice and a zero total, not an error.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.Search != nil && *filter.Search != "" {
		pattern := postgres.ContainsPattern(*filter.Search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"front": pattern},
			squirrel.ILike{"back": pattern},
		})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count flashcards query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count flashcards: %w", err)
	}
	if total == 0 {
		return []domain.Flashcard{}, 0, nil
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list flashcards query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}

	return toDomain(rows), total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateMany inserts all cards in one statement and returns the stored rows
// in insertion order.
func (r *Repo) CreateMany(ctx context.Context, userID uuid.UUID, cards []domain.NewFlashcard) ([]domain.Flashcard, error) {
	if len(cards) == 0 {
		return []domain.Flashcard{}, nil
	}

	insert := postgres.Builder().
		Insert(table).
		Columns("user_id", "front", "back", "source", "generation_id")
	for _, c := range cards {
		insert = insert.Values(userID, c.Front, c.Back, c.Source.String(), c.GenerationID)
	}

	query, args, err := insert.Suffix("RETURNING " + returning()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert flashcards query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	return toDomain(rows), nil
}

// Update applies the non-nil patch fields and returns the updated card.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.FlashcardPatch) (domain.Flashcard, error) {
	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()"))
	if patch.Front != nil {
		update = update.Set("front", *patch.Front)
	}
	if patch.Back != nil {
		update = update.Set("back", *patch.Back)
	}

	query, args, err := update.
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build update flashcard query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id)
	}
	if len(rows) == 0 {
		return domain.Flashcard{}, fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}

	return rows[0].toDomain(), nil
}

// Delete removes a card owned by userID.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete flashcard query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func returning() string {
	return strings.Join(columns, ", ")
}
