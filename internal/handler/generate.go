// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/slidecraft-ai/presentation-platform/internal/middleware"
	"github.com/slidecraft-ai/presentation-platform/internal/model"
	"github.com/slidecraft-ai/presentation-platform/internal/service"
	"github.com/slidecraft-ai/presentation-platform/pkg/logger"
)

// GenerateHandler handles the deck generation endpoint.
type GenerateHandler struct {
	generator *service.Generator
	logger    *logger.Logger
}

// NewGenerateHandler creates a new generation handler.
func NewGenerateHandler(generator *service.Generator, log *logger.Logger) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		logger:    log,
	}
}

// Generate handles POST /api/v1/decks/generate
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateTopic(req.Topic); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for name, value := range map[string]string{
		"audience":    req.Audience,
		"presenter":   req.Presenter,
		"designation": req.Designation,
		"tags":        req.Tags,
		"notes":       req.Notes,
	} {
		if err := middleware.ValidateFreeText(name, value); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	// A session header scopes the deck when the body carries no session.
	if req.SessionID == "" {
		req.SessionID = middleware.GetSessionID(ctx)
	}

	resp, err := h.generator.Generate(ctx, &req)
	if err != nil {
		h.logger.Error("generation failed",
			zap.String("topic", req.Topic),
			zap.Error(err),
		)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
