package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type generateRequest struct {
	SourceText string  `json:"source_text"`
	Model      *string `json:"model,omitempty"`
}

// Generate asks the API for flashcard candidates. An empty model selects
// the server default.
func (c *Client) Generate(ctx context.Context, sourceText, model string) (GenerationResult, error) {
	req := generateRequest{SourceText: sourceText}
	if model != "" {
		req.Model = &model
	}

	var out GenerationResult
	if err := c.do(ctx, http.MethodPost, "/api/generations", nil, req, &out); err != nil {
		return GenerationResult{}, err
	}
	return out, nil
}

// UpdateGenerationStats reports the review outcome of a generation.
func (c *Client) UpdateGenerationStats(ctx context.Context, id string, stats GenerationStats) (Generation, error) {
	var out Generation
	if err := c.do(ctx, http.MethodPatch, "/api/generations/"+url.PathEscape(id), nil, stats, &out); err != nil {
		return Generation{}, err
	}
	return out, nil
}

// GetGeneration returns one generation.
func (c *Client) GetGeneration(ctx context.Context, id string) (Generation, error) {
	var out Generation
	if err := c.do(ctx, http.MethodGet, "/api/generations/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return Generation{}, err
	}
	return out, nil
}

// RecentGenerationErrors returns the caller's latest failed generations.
func (c *Client) RecentGenerationErrors(ctx context.Context, limit int) ([]GenerationError, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Data []GenerationError `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/generation-errors", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
