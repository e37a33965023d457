//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/flashcard"
	generationrepo "github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/generation"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/generationlog"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/provider/openrouter"
	"github.com/heartmarshall/tenxcards-backend/internal/auth"
	"github.com/heartmarshall/tenxcards-backend/internal/config"
	"github.com/heartmarshall/tenxcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/tenxcards-backend/internal/service/generation"
	"github.com/heartmarshall/tenxcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/tenxcards-backend/internal/transport/rest"
)

const jwtSecret = "e2e-secret-at-least-32-characters!!"

// testServer wraps the full HTTP stack backed by PostgreSQL and a fake
// OpenRouter upstream.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	AI     *fakeModel
	jwt    *auth.JWTVerifier
}

// fakeModel serves chat completions with a configurable reply.
type fakeModel struct {
	mu      sync.Mutex
	content string
	status  int
}

func (m *fakeModel) reply(status int, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status, m.content = status, content
}

func (m *fakeModel) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	m.mu.Lock()
	status, content := m.status, m.content
	m.mu.Unlock()

	if status != http.StatusOK {
		http.Error(w, "upstream failure", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": content}}},
	})
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerEnv(t, config.EnvIntegration)
}

func setupTestServerEnv(t *testing.T, env string) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	features := config.Features(env)

	model := &fakeModel{status: http.StatusOK, content: "[]"}
	upstream := httptest.NewServer(model)
	t.Cleanup(upstream.Close)

	ai, err := openrouter.NewClient(openrouter.Config{APIKey: "e2e", BaseURL: upstream.URL}, logger)
	require.NoError(t, err)

	cardSvc := flashcard.NewService(logger, flashcardrepo.New(pool), txm)
	genSvc := generation.NewService(logger, ai, generationrepo.New(pool), generationlog.New(pool), txm, generation.Config{
		DefaultModel: "openai/gpt-4o-mini",
		Timeout:      5 * time.Second,
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	verifier := auth.NewJWTVerifier(jwtSecret, "e2e")
	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Flashcards:  rest.NewFlashcardHandler(cardSvc, logger),
		Generations: rest.NewGenerationHandler(genSvc, logger),
		Auth:        rest.NewAuthHandler("sb-access-token", "/login", false, logger),
		Health:      rest.NewHealthHandler(pool, "e2e", env, features),
		Features:    features,
		Verifier:    verifier,
		AuthOptions: middleware.AuthOptions{CookieName: "sb-access-token"},
		RateLimiter: limiter,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		AI:     model,
		jwt:    verifier,
	}
}

// newUser returns a bearer token for a fresh user.
func (ts *testServer) newUser(t *testing.T) string {
	t.Helper()
	token, err := ts.jwt.Sign(auth.Identity{ID: uuid.New(), Email: "e2e@example.com"}, time.Hour)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
