//go:build integration

package testhelper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/generation"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

func TestFlashcardRepo_Pagination(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := flashcard.New(pool)
	ctx := context.Background()
	userID := testhelper.NewUserID()

	cards := make([]domain.NewFlashcard, 25)
	for i := range cards {
		cards[i] = domain.NewFlashcard{Front: "Q", Back: "A", Source: domain.SourceManual}
	}
	created, err := repo.CreateMany(ctx, userID, cards)
	require.NoError(t, err)
	require.Len(t, created, 25)

	seen := make(map[string]bool)
	for page, want := range []int{10, 10, 5} {
		got, total, err := repo.List(ctx, userID, domain.FlashcardFilter{Limit: 10, Offset: domain.Offset(page+1, 10)})
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		assert.Len(t, got, want)
		for _, c := range got {
			assert.False(t, seen[c.ID.String()], "card %s appears on two pages", c.ID)
			seen[c.ID.String()] = true
		}
	}
}

func TestFlashcardRepo_SearchAndOwnership(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := flashcard.New(pool)
	ctx := context.Background()
	owner, other := testhelper.NewUserID(), testhelper.NewUserID()

	_, err := repo.CreateMany(ctx, owner, []domain.NewFlashcard{
		{Front: "Goroutines", Back: "lightweight threads", Source: domain.SourceManual},
		{Front: "Channels", Back: "typed conduits for GOROUTINE sync", Source: domain.SourceManual},
		{Front: "Maps", Back: "hash tables", Source: domain.SourceManual},
	})
	require.NoError(t, err)

	term := "goroutine"
	got, total, err := repo.List(ctx, owner, domain.FlashcardFilter{Search: &term, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)

	none := "nothing-matches"
	got, total, err = repo.List(ctx, owner, domain.FlashcardFilter{Search: &none, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, got)

	_, total, err = repo.List(ctx, other, domain.FlashcardFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestGenerationRepo_StatsInTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := generation.New(pool)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()
	userID := testhelper.NewUserID()
	model := "test-model"

	g, err := repo.Create(ctx, domain.Generation{
		UserID: userID, Model: &model, SourceTextHash: "h", SourceTextLength: 1000, GeneratedCount: 3,
	})
	require.NoError(t, err)
	assert.Nil(t, g.RejectedCount)

	err = tm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repo.GetForUpdate(ctx, userID, g.ID); err != nil {
			return err
		}
		_, err := repo.UpdateStats(ctx, userID, g.ID, domain.GenerationStats{AcceptedUnedited: 1, AcceptedEdited: 1, Rejected: 1})
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, userID, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RejectedCount)
	assert.Equal(t, 1, *got.RejectedCount)

	_, err = repo.GetByID(ctx, testhelper.NewUserID(), g.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
