package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/tenxcards-backend/internal/config"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db          dbPinger
	version     string
	environment string
	features    featureChecker
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version, environment string, features featureChecker) *HealthHandler {
	return &HealthHandler{db: db, version: version, environment: environment, features: features}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status      string                `json:"status"`
	Version     string                `json:"version,omitempty"`
	Environment string                `json:"environment,omitempty"`
	Features    map[string]bool       `json:"features,omitempty"`
	Components  map[string]CompStatus `json:"components,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready pings the database: 200 if reachable, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports database latency, build version, environment and the
// feature flags in effect.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	features := make(map[string]bool, 3)
	for _, name := range []string{config.FeatureAuth, config.FeatureFlashcards, config.FeatureGenerations} {
		features[name] = h.features.IsEnabled(name)
	}

	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:      db.Status,
		Version:     h.version,
		Environment: h.environment,
		Features:    features,
		Components:  map[string]CompStatus{"database": db},
		Timestamp:   time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func httpStatus(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
