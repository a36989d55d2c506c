package handlers

import (
	"net/http"
	"strconv"

	"showcase.dev/internal/log"
	"showcase.dev/internal/services"
)

// PageHandler serves the rendered portfolio page
type PageHandler struct {
	pageService *services.PageService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PageService) *PageHandler {
	return &PageHandler{pageService: ps}
}

// Index handles GET / and HEAD /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	doc, err := h.pageService.Render()
	if err != nil {
		logger := log.WithComponentFromContext(r.Context(), "page")
		logger.Error().Err(err).Str("event", "page.render_failed").Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(doc)
}
