package handler

import (
	"errors"
	"net/http"
	"strconv"

	"enableboard/internal/dataset"
	"enableboard/internal/scope"
	"enableboard/internal/service"
)

// BriefHandler exposes the computed brief without narration, so the numbers
// behind an answer stay inspectable.
type BriefHandler struct {
	loader *dataset.Loader
	briefs *service.BriefService
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(loader *dataset.Loader, briefs *service.BriefService) *BriefHandler {
	return &BriefHandler{loader: loader, briefs: briefs}
}

// Get handles GET /v1/brief?geo=&manager=&personId=&windowDays=
func (h *BriefHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	windowDays, _ := strconv.Atoi(q.Get("windowDays"))
	sc := scope.Resolved{
		Geo:        q.Get("geo"),
		Manager:    q.Get("manager"),
		PersonID:   q.Get("personId"),
		WindowDays: windowDays,
	}.Normalized()

	snap, err := h.loader.LoadSnapshot(r.Context())
	if err != nil {
		if errors.Is(err, dataset.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.briefs.Build(snap, sc))
}
