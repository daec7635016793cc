package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"enableboard/internal/dataset"
	"enableboard/internal/service"
)

// AskHandler handles the boardroom question endpoint
type AskHandler struct {
	askSvc *service.AskService
}

// NewAskHandler creates a new ask handler
func NewAskHandler(askSvc *service.AskService) *AskHandler {
	return &AskHandler{askSvc: askSvc}
}

// Ask handles POST /v1/ask. A malformed body is treated as an empty request:
// the defaults (organization-wide, all history) are always well-defined.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req service.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = service.AskRequest{}
	}

	resp, err := h.askSvc.Ask(r.Context(), req)
	if err != nil {
		var narrErr *service.NarrationError
		switch {
		case errors.As(err, &narrErr):
			// The numbers survived; only the prose failed. Return them so the
			// caller can still inspect the brief.
			writeJSON(w, http.StatusBadGateway, map[string]interface{}{
				"error": narrErr.Error(),
				"brief": narrErr.Brief,
			})
		case errors.Is(err, dataset.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
