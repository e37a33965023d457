package rest

import (
	"time"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

// FlashcardResponse is the public shape of a flashcard. The owner id is
// never exposed.
type FlashcardResponse struct {
	ID           string    `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Source       string    `json:"source"`
	GenerationID *string   `json:"generation_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PaginationResponse describes one page of a listing.
type PaginationResponse struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	Limit       int `json:"limit"`
}

// ListResponse is a page of items with its pagination metadata.
type ListResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// GenerationResponse is the public shape of a generation.
// GenerationDuration is in milliseconds.
type GenerationResponse struct {
	ID                    string    `json:"id"`
	Model                 *string   `json:"model"`
	SourceTextHash        string    `json:"source_text_hash"`
	SourceTextLength      int       `json:"source_text_length"`
	GeneratedCount        int       `json:"generated_count"`
	AcceptedUneditedCount *int      `json:"accepted_unedited_count"`
	AcceptedEditedCount   *int      `json:"accepted_edited_count"`
	RejectedCount         *int      `json:"rejected_count"`
	GenerationDuration    int64     `json:"generation_duration"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// GenerateResponse is returned by POST /api/generations.
type GenerateResponse struct {
	GenerationID       string              `json:"generation_id"`
	Model              *string             `json:"model"`
	SourceTextHash     string              `json:"source_text_hash"`
	SourceTextLength   int                 `json:"source_text_length"`
	GeneratedCount     int                 `json:"generated_count"`
	RejectedCount      *int                `json:"rejected_count"`
	GenerationDuration int64               `json:"generation_duration"`
	CreatedAt          time.Time           `json:"created_at"`
	Candidates         []CandidateResponse `json:"candidates"`
}

// CandidateResponse is one proposed flashcard.
type CandidateResponse struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	Source string `json:"source"`
}

// GenerationErrorResponse is one generation error log entry.
type GenerationErrorResponse struct {
	ID               string    `json:"id"`
	Model            string    `json:"model"`
	SourceTextHash   string    `json:"source_text_hash"`
	SourceTextLength int       `json:"source_text_length"`
	ErrorCode        string    `json:"error_code"`
	ErrorMessage     string    `json:"error_message"`
	CreatedAt        time.Time `json:"created_at"`
}

func toFlashcardResponse(c domain.Flashcard) FlashcardResponse {
	resp := FlashcardResponse{
		ID:        c.ID.String(),
		Front:     c.Front,
		Back:      c.Back,
		Source:    c.Source.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.GenerationID != nil {
		id := c.GenerationID.String()
		resp.GenerationID = &id
	}
	return resp
}

func toFlashcardResponses(cards []domain.Flashcard) []FlashcardResponse {
	out := make([]FlashcardResponse, len(cards))
	for i, c := range cards {
		out[i] = toFlashcardResponse(c)
	}
	return out
}

func toPaginationResponse(p domain.Pagination) PaginationResponse {
	return PaginationResponse{
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Limit:       p.Limit,
	}
}

func toGenerationResponse(g domain.Generation) GenerationResponse {
	return GenerationResponse{
		ID:                    g.ID.String(),
		Model:                 g.Model,
		SourceTextHash:        g.SourceTextHash,
		SourceTextLength:      g.SourceTextLength,
		GeneratedCount:        g.GeneratedCount,
		AcceptedUneditedCount: g.AcceptedUneditedCount,
		AcceptedEditedCount:   g.AcceptedEditedCount,
		RejectedCount:         g.RejectedCount,
		GenerationDuration:    g.GenerationDuration.Milliseconds(),
		CreatedAt:             g.CreatedAt,
		UpdatedAt:             g.UpdatedAt,
	}
}

func toGenerateResponse(g domain.Generation, candidates []domain.CandidateProposal) GenerateResponse {
	out := GenerateResponse{
		GenerationID:       g.ID.String(),
		Model:              g.Model,
		SourceTextHash:     g.SourceTextHash,
		SourceTextLength:   g.SourceTextLength,
		GeneratedCount:     g.GeneratedCount,
		RejectedCount:      g.RejectedCount,
		GenerationDuration: g.GenerationDuration.Milliseconds(),
		CreatedAt:          g.CreatedAt,
		Candidates:         make([]CandidateResponse, len(candidates)),
	}
	for i, c := range candidates {
		out.Candidates[i] = CandidateResponse{Front: c.Front, Back: c.Back, Source: c.Source.String()}
	}
	return out
}

func toGenerationErrorResponse(e domain.GenerationErrorLog) GenerationErrorResponse {
	return GenerationErrorResponse{
		ID:               e.ID.String(),
		Model:            e.Model,
		SourceTextHash:   e.SourceTextHash,
		SourceTextLength: e.SourceTextLength,
		ErrorCode:        e.ErrorCode,
		ErrorMessage:     e.ErrorMessage,
		CreatedAt:        e.CreatedAt,
	}
}
