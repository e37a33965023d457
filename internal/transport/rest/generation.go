package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
	"github.com/heartmarshall/tenxcards-backend/internal/service/generation"
)

type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (generation.GenerateResult, error)
	UpdateStats(ctx context.Context, input generation.UpdateStatsInput) (domain.Generation, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Generation, error)
	List(ctx context.Context, input generation.ListInput) (generation.ListResult, error)
	RecentErrors(ctx context.Context, limit int) ([]domain.GenerationErrorLog, error)
}

// GenerationHandler serves /api/generations and /api/generation-errors.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

// Generate handles POST /api/generations.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input generation.GenerateInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Generate(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenerateResponse(result.Generation, result.Candidates))
}

// UpdateStats handles PATCH /api/generations/{id}.
func (h *GenerationHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var input generation.UpdateStatsInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	input.ID = id

	gen, err := h.svc.UpdateStats(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenerationResponse(gen))
}

// Get handles GET /api/generations/{id}.
func (h *GenerationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	gen, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenerationResponse(gen))
}

// List handles GET /api/generations?page&limit.
func (h *GenerationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var errs []domain.FieldError
	input := generation.ListInput{
		Page:  queryInt(q, "page", 1, &errs),
		Limit: queryInt(q, "limit", generation.DefaultLimit, &errs),
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

	data := make([]GenerationResponse, len(result.Items))
	for i, g := range result.Items {
		data[i] = toGenerationResponse(g)
	}
	writeJSON(w, http.StatusOK, ListResponse[GenerationResponse]{
		Data:       data,
		Pagination: toPaginationResponse(result.Pagination),
	})
}

// RecentErrors handles GET /api/generation-errors?limit.
func (h *GenerationHandler) RecentErrors(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	limit := queryInt(r.URL.Query(), "limit", generation.DefaultLimit, &errs)
	if len(errs) > 0 {
		respondError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	entries, err := h.svc.RecentErrors(r.Context(), limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	data := make([]GenerationErrorResponse, len(entries))
	for i, e := range entries {
		data[i] = toGenerationErrorResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}
