// Package anthropic calls the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

const defaultMaxTokens = 2048

// Config holds client settings. Zero values fall back to defaults.
type Config struct {
	APIKey            string
	BaseURL           string
	MaxTokens         int
	RequestsPerMinute int
}

// Client sends single-message prompts and returns the first text block.
type Client struct {
	api       sdk.Client
	maxTokens int64
	limiter   *rate.Limiter
	log       *slog.Logger
}

// NewClient creates a Client. The API key is required.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic: api key required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
		burst = cfg.RequestsPerMinute
	}

	return &Client{
		api:       sdk.NewClient(opts...),
		maxTokens: int64(maxTokens),
		limiter:   rate.NewLimiter(limit, burst),
		log:       logger.With("adapter", "anthropic"),
	}, nil
}

// Complete sends prompt to model and returns the text of the first content
// block. Every failure is a *domain.AIError.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", waitError(ctx, err)
	}

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		c.log.WarnContext(ctx, "anthropic request failed", slog.String("model", model), slog.String("error", err.Error()))
		return "", classify(err)
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("model", model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("blocks", len(msg.Content)),
	)

	for _, block := range msg.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return block.Text, nil
		}
	}
	return "", domain.NewAIError(domain.AIErrorInvalidOutput, errors.New("response has no text content"))
}

// waitError classifies a rate limiter failure. Wait gives up early, without
// wrapping context.DeadlineExceeded, when the next token is due after the
// deadline.
func waitError(ctx context.Context, err error) error {
	if _, ok := ctx.Deadline(); ok && !errors.Is(ctx.Err(), context.Canceled) {
		return domain.NewAIError(domain.AIErrorTimeout, fmt.Errorf("rate limit wait: %w", err))
	}
	return classify(err)
}

func classify(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return domain.NewAIError(domain.AIErrorUpstream, fmt.Errorf("status %d: %w", apiErr.StatusCode, err))
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewAIError(domain.AIErrorTimeout, err)
	}
	return domain.NewAIError(domain.AIErrorNetwork, err)
}
