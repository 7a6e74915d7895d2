package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/slidecraft-ai/presentation-platform/internal/middleware"
	"github.com/slidecraft-ai/presentation-platform/internal/model"
	"github.com/slidecraft-ai/presentation-platform/internal/service"
	"github.com/slidecraft-ai/presentation-platform/pkg/logger"
)

// DeckHandler handles stored-deck endpoints: load, slide edit, export.
type DeckHandler struct {
	decks  *service.Decks
	logger *logger.Logger
}

// NewDeckHandler creates a new deck handler.
func NewDeckHandler(decks *service.Decks, log *logger.Logger) *DeckHandler {
	return &DeckHandler{
		decks:  decks,
		logger: log,
	}
}

// Get handles GET /api/v1/decks/{id}
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")
	if err := middleware.ValidateDeckID(deckID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.decks.Get(r.Context(), deckID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Deck{ID: deckID, Document: *doc})
}

// UpdateSlide handles PUT /api/v1/decks/{id}/slides/{index}
func (h *DeckHandler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")
	if err := middleware.ValidateDeckID(deckID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	index, err := middleware.ValidateSlideIndex(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdateSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The path parameter is authoritative: a body index that disagrees
	// cannot move the edit onto another slide.
	req.Slide.Index = index

	resp, err := h.decks.UpdateSlide(r.Context(), deckID, req.Slide)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/v1/decks/{id}/export
func (h *DeckHandler) Export(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")
	if err := middleware.ValidateDeckID(deckID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename, data, err := h.decks.Export(r.Context(), deckID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
