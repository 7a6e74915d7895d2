package handler

import (
	"net/http"

	"github.com/slidecraft-ai/presentation-platform/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	decks store.DeckStore
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(decks store.DeckStore) *HealthHandler {
	return &HealthHandler{decks: decks}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.decks.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
