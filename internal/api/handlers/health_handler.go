package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HealthChecker probes the AI backend. Satisfied by the Ollama client.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// HealthHandler reports service liveness and AI backend reachability.
type HealthHandler struct {
	ai HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ai HealthChecker) *HealthHandler {
	return &HealthHandler{ai: ai}
}

// Get answers the liveness probe. The AI flag is informational; the endpoint
// returns 200 either way since chat degrades to fallback text.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":     "ok",
		"ai_backend": h.ai.HealthCheck(ctx),
	})
}
