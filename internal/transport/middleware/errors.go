package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the REST error envelope for responses written before a
// handler runs.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: code, Message: message}) //nolint:errcheck
}
