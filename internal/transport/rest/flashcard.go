package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/internal/service/flashcard"
)

type flashcardService interface {
	Create(ctx context.Context, input flashcard.CreateFlashcardsInput) ([]domain.Flashcard, error)
	List(ctx context.Context, input flashcard.ListFlashcardsInput) (flashcard.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)
	Update(ctx context.Context, input flashcard.UpdateFlashcardInput) (domain.Flashcard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FlashcardHandler serves /api/flashcards.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

// Create handles POST /api/flashcards. The body is a single command object
// or a non-empty array of them; the response is always an array.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var input flashcard.CreateFlashcardsInput
	if len(body) > 0 && body[0] == '[' {
		input.Batch = true
		if err := json.Unmarshal(body, &input.Cards); err != nil {
			respondError(w, r, h.log, errInvalidJSON)
			return
		}
	} else {
		var one flashcard.CreateFlashcardInput
		if len(body) == 0 || json.Unmarshal(body, &one) != nil {
			respondError(w, r, h.log, errInvalidJSON)
			return
		}
		input.Cards = []flashcard.CreateFlashcardInput{one}
	}

	cards, err := h.svc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlashcardResponses(cards))
}

// List handles GET /api/flashcards?page&limit&search.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var errs []domain.FieldError
	input := flashcard.ListFlashcardsInput{
		Page:  queryInt(q, "page", flashcard.DefaultPage, &errs),
		Limit: queryInt(q, "limit", flashcard.DefaultLimit, &errs),
	}
	if q.Has("search") {
		search := q.Get("search")
		input.Search = &search
	}
	if len(errs) > 0 {
		respondError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse[FlashcardResponse]{
		Data:       toFlashcardResponses(result.Items),
		Pagination: toPaginationResponse(result.Pagination),
	})
}

// Get handles GET /api/flashcards/{id}.
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	card, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// Update handles PATCH /api/flashcards/{id}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var input flashcard.UpdateFlashcardInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	input.ID = id

	card, err := h.svc.Update(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// Delete handles DELETE /api/flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
