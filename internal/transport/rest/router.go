package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/tenxcards-backend/internal/auth"
	"github.com/heartmarshall/tenxcards-backend/internal/config"
	"github.com/heartmarshall/tenxcards-backend/internal/transport/middleware"
)

type featureChecker interface {
	IsEnabled(name string) bool
}

type tokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// RouterDeps holds everything the HTTP surface is built from.
// RateLimiter and Metrics are optional.
type RouterDeps struct {
	Logger      *slog.Logger
	Flashcards  *FlashcardHandler
	Generations *GenerationHandler
	Auth        *AuthHandler
	Health      *HealthHandler

	Features    featureChecker
	Verifier    tokenVerifier
	AuthOptions middleware.AuthOptions
	CORS        config.CORSConfig

	RateLimiter *middleware.RateLimiter
	RateLimit   config.RateLimitConfig

	Metrics        *middleware.Metrics
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter builds the API router.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
	))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(middleware.CORS(d.CORS))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.MetricsHandler != nil {
		r.Handle(d.MetricsPath, d.MetricsHandler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: CodeNotFound, Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: CodeBadRequest, Message: "method not allowed"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Auth(d.Verifier, d.AuthOptions))
		limited := d.RateLimiter != nil && d.RateLimit.Enabled
		if limited {
			api.Use(d.RateLimiter.Limit(d.RateLimit.RequestsPerMinute))
		}

		api.Group(func(g chi.Router) {
			g.Use(middleware.RequireFeature(d.Features, config.FeatureAuth))
			g.Post("/auth/logout", d.Auth.Logout)
		})

		api.Group(func(g chi.Router) {
			g.Use(
				middleware.RequireFeature(d.Features, config.FeatureFlashcards),
				middleware.RequireIdentity(),
			)
			g.Post("/flashcards", d.Flashcards.Create)
			g.Get("/flashcards", d.Flashcards.List)
			g.Get("/flashcards/{id}", d.Flashcards.Get)
			g.Patch("/flashcards/{id}", d.Flashcards.Update)
			g.Delete("/flashcards/{id}", d.Flashcards.Delete)
		})

		api.Group(func(g chi.Router) {
			g.Use(
				middleware.RequireFeature(d.Features, config.FeatureGenerations),
				middleware.RequireIdentity(),
			)
			if limited {
				g.With(d.RateLimiter.Limit(d.RateLimit.GenerationsPerMinute)).Post("/generations", d.Generations.Generate)
			} else {
				g.Post("/generations", d.Generations.Generate)
			}
			g.Get("/generations", d.Generations.List)
			g.Get("/generations/{id}", d.Generations.Get)
			g.Patch("/generations/{id}", d.Generations.UpdateStats)
			g.Get("/generation-errors", d.Generations.RecentErrors)
		})
	})

	return r
}
