package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/slidecraft-ai/presentation-platform/internal/service"
	"github.com/slidecraft-ai/presentation-platform/internal/store"
)

// ErrorResponse is the structured error body for every failure path.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto its HTTP status and splits
// any wrapped detail off the sentinel message.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var sentinel error

	switch {
	case errors.Is(err, service.ErrTopicRequired):
		status, sentinel = http.StatusBadRequest, service.ErrTopicRequired
	case errors.Is(err, service.ErrNotConfigured):
		status, sentinel = http.StatusInternalServerError, service.ErrNotConfigured
	case errors.Is(err, service.ErrGenerationInFlight):
		status, sentinel = http.StatusConflict, service.ErrGenerationInFlight
	case errors.Is(err, service.ErrRateLimited):
		status, sentinel = http.StatusTooManyRequests, service.ErrRateLimited
	case errors.Is(err, service.ErrCreditsExhausted):
		status, sentinel = http.StatusPaymentRequired, service.ErrCreditsExhausted
	case errors.Is(err, service.ErrNoContent):
		status, sentinel = http.StatusBadGateway, service.ErrNoContent
	case errors.Is(err, service.ErrInvalidJSON):
		status, sentinel = http.StatusBadGateway, service.ErrInvalidJSON
	case errors.Is(err, service.ErrSchemaViolation):
		status, sentinel = http.StatusBadGateway, service.ErrSchemaViolation
	case errors.Is(err, service.ErrInvalidStructure):
		status, sentinel = http.StatusBadGateway, service.ErrInvalidStructure
	case errors.Is(err, service.ErrUpstream):
		status, sentinel = http.StatusBadGateway, service.ErrUpstream
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "no presentation data")
		return
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := ErrorResponse{Error: sentinel.Error()}
	if detail := strings.TrimPrefix(err.Error(), sentinel.Error()); detail != err.Error() {
		resp.Details = strings.TrimPrefix(detail, ": ")
	}
	writeJSON(w, status, resp)
}
