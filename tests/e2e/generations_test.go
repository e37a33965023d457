//go:build e2e

package e2e_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tenxcards-backend/internal/client"
)

var sourceText = strings.Repeat("Cells convert nutrients into energy. ", 40)

func TestE2E_GenerateReviewAndSave(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.newUser(t)

	ts.AI.reply(http.StatusOK, "Here you go:\n"+
		`[{"front":"What produces ATP?","back":"Mitochondria"},{"front":"What is ATP?","back":"Energy currency"}]`)

	resp := ts.do(t, http.MethodPost, "/api/generations", token, map[string]string{"source_text": sourceText})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	gen := decode[client.GenerationResult](t, resp)
	require.Len(t, gen.Candidates, 2)
	assert.Equal(t, 2, gen.GeneratedCount)
	assert.Equal(t, len(sourceText), gen.SourceTextLength)
	assert.Len(t, gen.SourceTextHash, 64)
	assert.Nil(t, gen.RejectedCount)

	resp = ts.do(t, http.MethodPost, "/api/flashcards", token, []client.CreateFlashcardRequest{
		{Front: gen.Candidates[0].Front, Back: gen.Candidates[0].Back, Source: "ai-full", GenerationID: &gen.GenerationID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ts.do(t, http.MethodPatch, "/api/generations/"+gen.GenerationID, token, client.GenerationStats{AcceptedUnedited: 1, Rejected: 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stored := decode[client.Generation](t, resp)
	require.NotNil(t, stored.AcceptedUneditedCount)
	assert.Equal(t, 1, *stored.AcceptedUneditedCount)
	require.NotNil(t, stored.RejectedCount)
	assert.Equal(t, 1, *stored.RejectedCount)

	resp = ts.do(t, http.MethodPatch, "/api/generations/"+gen.GenerationID, token, client.GenerationStats{AcceptedUnedited: 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "stats exceeding generated count")
}

func TestE2E_GenerationsAreOwnerScoped(t *testing.T) {
	ts := setupTestServer(t)
	alice, bob := ts.newUser(t), ts.newUser(t)

	ts.AI.reply(http.StatusOK, `[{"front":"q","back":"a"}]`)
	gen := decode[client.GenerationResult](t, ts.do(t, http.MethodPost, "/api/generations", alice, map[string]string{"source_text": sourceText}))

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/generations/"+gen.GenerationID, alice, nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/generations/"+gen.GenerationID, bob, nil).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/api/generations/"+gen.GenerationID, "", nil).StatusCode)
}

func TestE2E_GenerateUpstreamFailureIsLogged(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.newUser(t)

	ts.AI.reply(http.StatusBadGateway, "")

	resp := ts.do(t, http.MethodPost, "/api/generations", token, map[string]string{"source_text": sourceText})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	errs := decode[struct {
		Data []client.GenerationError `json:"data"`
	}](t, ts.do(t, http.MethodGet, "/api/generation-errors", token, nil))
	require.Len(t, errs.Data, 1)
	assert.Equal(t, "upstream_status", errs.Data[0].ErrorCode)
	assert.Equal(t, len(sourceText), errs.Data[0].SourceTextLength)
}

func TestE2E_GenerateValidatesLength(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.newUser(t)

	resp := ts.do(t, http.MethodPost, "/api/generations", token, map[string]string{"source_text": "too short"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
