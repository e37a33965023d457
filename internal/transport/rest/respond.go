package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

// Error codes of the response envelope.
const (
	CodeValidation         = "validation_error"
	CodeBadRequest         = "bad_request"
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeAlreadyExists      = "already_exists"
	CodeFeatureDisabled    = "feature_disabled"
	CodeServiceUnavailable = "service_unavailable"
	CodeInternal           = "internal_error"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error            string              `json:"error"`
	Message          string              `json:"message"`
	ValidationErrors []domain.FieldError `json:"validation_errors,omitempty"`
}

// classify maps err to the HTTP status and envelope returned to the client.
// Messages for unclassified errors are generic.
func classify(err error) (int, ErrorResponse) {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error:            CodeValidation,
			Message:          "validation failed",
			ValidationErrors: valErr.Errors,
		}
	}

	var badReq *domain.BadRequestError
	if errors.As(err, &badReq) {
		return http.StatusBadRequest, ErrorResponse{Error: CodeBadRequest, Message: badReq.Message}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Error: CodeValidation, Message: "validation failed"}
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, ErrorResponse{Error: CodeBadRequest, Message: "bad request"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Error: CodeUnauthorized, Message: "authentication required"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Error: CodeForbidden, Message: "access denied"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: CodeNotFound, Message: "resource not found"}
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrorResponse{Error: CodeAlreadyExists, Message: "resource already exists"}
	case errors.Is(err, domain.ErrFeatureDisabled):
		return http.StatusServiceUnavailable, ErrorResponse{Error: CodeFeatureDisabled, Message: "feature is disabled"}
	case errors.Is(err, domain.ErrAITimeout):
		return http.StatusGatewayTimeout, ErrorResponse{Error: CodeServiceUnavailable, Message: "AI service timed out, please try again"}
	case errors.Is(err, domain.ErrAIUnavailable):
		return http.StatusBadGateway, ErrorResponse{Error: CodeServiceUnavailable, Message: "AI service is unavailable, please try again later"}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: CodeInternal, Message: "internal server error"}
}

// respondError writes the envelope for err. Server-side failures are logged
// with the original error, which never reaches the client.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
