package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/flashcard"
	generationrepo "github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/generation"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/postgres/generationlog"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/tenxcards-backend/internal/adapter/provider/openrouter"
	"github.com/heartmarshall/tenxcards-backend/internal/auth"
	"github.com/heartmarshall/tenxcards-backend/internal/config"
	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/tenxcards-backend/internal/service/generation"
	"github.com/heartmarshall/tenxcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/tenxcards-backend/internal/transport/rest"
	"github.com/heartmarshall/tenxcards-backend/migrations"
)

const rateLimitCleanup = 5 * time.Minute

// Run loads configuration, wires dependencies and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	features := config.Features(cfg.App.Environment)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	ai, err := newAIProvider(cfg.AI, features, logger)
	if err != nil {
		return err
	}

	tx := postgres.NewTxManager(pool)
	cardSvc := flashcard.NewService(logger, flashcardrepo.New(pool), tx)
	genSvc := generation.NewService(logger, ai, generationrepo.New(pool), generationlog.New(pool), tx, generation.Config{
		DefaultModel: cfg.AI.DefaultModel,
		Timeout:      cfg.AI.Timeout,
	})

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	deps := rest.RouterDeps{
		Logger:      logger,
		Flashcards:  rest.NewFlashcardHandler(cardSvc, logger),
		Generations: rest.NewGenerationHandler(genSvc, logger),
		Auth:        rest.NewAuthHandler(cfg.Auth.CookieName, cfg.Auth.LogoutRedirect, cfg.App.Environment != config.EnvLocal, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion(), cfg.App.Environment, features),
		Features:    features,
		Verifier:    auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		AuthOptions: authOptions(cfg.Auth, logger),
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		RateLimit:   cfg.RateLimit,
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		deps.Metrics = middleware.NewMetrics(reg)
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func authOptions(cfg config.AuthConfig, logger *slog.Logger) middleware.AuthOptions {
	opts := middleware.AuthOptions{CookieName: cfg.CookieName}
	if cfg.HasDevUser() {
		// Validate has already checked the id.
		opts.DevUser = &auth.Identity{ID: uuid.MustParse(cfg.DevUserID), Email: cfg.DevUserEmail}
		logger.Warn("dev user attached to unauthenticated requests", slog.String("user_id", cfg.DevUserID))
	}
	return opts
}

type aiProvider interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// newAIProvider builds the configured provider. Without an API key the
// generations feature must be off; the returned provider then always
// reports the service as unavailable.
func newAIProvider(cfg config.AIConfig, features config.FeatureFlags, logger *slog.Logger) (aiProvider, error) {
	if cfg.APIKey == "" {
		if features.IsEnabled(config.FeatureGenerations) {
			return nil, errors.New("ai: api_key is required when generations are enabled")
		}
		return unavailableProvider{}, nil
	}

	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.NewClient(anthropic.Config{
			APIKey:            cfg.APIKey,
			BaseURL:           cfg.BaseURL,
			MaxTokens:         cfg.MaxTokens,
			RequestsPerMinute: cfg.RequestsPerMinute,
		}, logger)
	default:
		return openrouter.NewClient(openrouter.Config{
			APIKey:            cfg.APIKey,
			BaseURL:           cfg.BaseURL,
			MaxTokens:         cfg.MaxTokens,
			RequestsPerMinute: cfg.RequestsPerMinute,
		}, logger)
	}
}

type unavailableProvider struct{}

func (unavailableProvider) Complete(context.Context, string, string) (string, error) {
	return "", domain.ErrAIUnavailable
}
