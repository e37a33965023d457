// Package openrouter calls an OpenAI-compatible chat completions endpoint.
// OpenRouter is the default deployment target.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

const (
	defaultBaseURL   = "https://openrouter.ai/api/v1"
	defaultMaxTokens = 2048
	maxErrorBody     = 512
)

// Config holds client settings. Zero values fall back to defaults.
type Config struct {
	APIKey            string
	BaseURL           string
	MaxTokens         int
	RequestsPerMinute int
	HTTPTimeout       time.Duration
}

// Client sends single-message prompts and returns the first choice text.
type Client struct {
	apiKey     string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewClient creates a Client. The API key is required.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: api key required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
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
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		limiter:    rate.NewLimiter(limit, burst),
		log:        logger.With("adapter", "openrouter"),
	}, nil
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends prompt to model and returns the text of the first choice.
// Every failure is a *domain.AIError.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", waitError(ctx, err)
	}

	payload, err := json.Marshal(chatRequest{
		Model:     model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openrouter: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "openrouter request failed", slog.String("model", model), slog.String("error", err.Error()))
		return "", classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransport(err)
	}

	c.log.DebugContext(ctx, "openrouter response",
		slog.String("model", model),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domain.NewAIError(domain.AIErrorUpstream, fmt.Errorf("status %d: %s", resp.StatusCode, errorMessage(body)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", domain.NewAIError(domain.AIErrorInvalidOutput, fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", domain.NewAIError(domain.AIErrorInvalidOutput, errors.New("response has no choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}

// waitError classifies a rate limiter failure. Wait gives up early, without
// wrapping context.DeadlineExceeded, when the next token is due after the
// deadline.
func waitError(ctx context.Context, err error) error {
	if _, ok := ctx.Deadline(); ok && !errors.Is(ctx.Err(), context.Canceled) {
		return domain.NewAIError(domain.AIErrorTimeout, fmt.Errorf("rate limit wait: %w", err))
	}
	return classifyTransport(err)
}

func classifyTransport(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewAIError(domain.AIErrorTimeout, err)
	}
	return domain.NewAIError(domain.AIErrorNetwork, err)
}

func errorMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return strings.TrimSpace(string(body))
}
