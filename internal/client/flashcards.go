package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateFlashcards creates all cards in one request.
func (c *Client) CreateFlashcards(ctx context.Context, cards []CreateFlashcardRequest) ([]Flashcard, error) {
	var out []Flashcard
	if err := c.do(ctx, http.MethodPost, "/api/flashcards", nil, cards, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFlashcards returns one page of flashcards.
func (c *Client) ListFlashcards(ctx context.Context, p ListFlashcardsParams) (FlashcardPage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	var out FlashcardPage
	if err := c.do(ctx, http.MethodGet, "/api/flashcards", q, nil, &out); err != nil {
		return FlashcardPage{}, err
	}
	return out, nil
}

// GetFlashcard returns one flashcard.
func (c *Client) GetFlashcard(ctx context.Context, id string) (Flashcard, error) {
	var out Flashcard
	if err := c.do(ctx, http.MethodGet, "/api/flashcards/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return Flashcard{}, err
	}
	return out, nil
}

// UpdateFlashcard changes the provided fields of a flashcard.
func (c *Client) UpdateFlashcard(ctx context.Context, id string, req UpdateFlashcardRequest) (Flashcard, error) {
	var out Flashcard
	if err := c.do(ctx, http.MethodPatch, "/api/flashcards/"+url.PathEscape(id), nil, req, &out); err != nil {
		return Flashcard{}, err
	}
	return out, nil
}

// DeleteFlashcard deletes a flashcard.
func (c *Client) DeleteFlashcard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/flashcards/"+url.PathEscape(id), nil, nil, nil)
}
