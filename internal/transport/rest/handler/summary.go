package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"enableboard/internal/dataset"
	"enableboard/internal/service"
)

// SummaryHandler handles the executive summary endpoint
type SummaryHandler struct {
	summarySvc *service.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summarySvc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

// Summarize handles POST /v1/summary
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req service.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = service.SummaryRequest{}
	}

	summary, err := h.summarySvc.Summarize(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNarration):
			writeError(w, http.StatusBadGateway, err.Error())
		case errors.Is(err, dataset.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
