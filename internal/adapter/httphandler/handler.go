package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/port"
)

// GET v1/sections/new-arrivals (200 OK, 503 Service unavailable)
// GET v1/sections/popular (200 OK, 503 Service unavailable)
// GET v1/catalog?category=selector (200 OK, 503 Service unavailable)

const unavailableMsg = "unable to load catalog"

type SectionsHandler struct {
	viewer port.SectionsViewer
}

func RegisterSections(mux *http.ServeMux, viewer port.SectionsViewer) {
	h := SectionsHandler{viewer}
	mux.HandleFunc("GET /v1/sections/new-arrivals", h.GetNewArrivals)
	mux.HandleFunc("GET /v1/sections/popular", h.GetPopular)
}

func (h SectionsHandler) GetNewArrivals(w http.ResponseWriter, r *http.Request) {
	const op = "SectionsHandler.GetNewArrivals"
	h.writeSection(w, op, h.viewer.NewArrivals)
}

func (h SectionsHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	const op = "SectionsHandler.GetPopular"
	h.writeSection(w, op, h.viewer.Popular)
}

func (h SectionsHandler) writeSection(
	w http.ResponseWriter, op string, stateFn func() domain.SectionState,
) {
	log := slog.With("op", op)

	if !h.viewer.CatalogAvailable() {
		http.Error(w, unavailableMsg, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, log, toSectionResponse(stateFn()))
}

type CatalogHandler struct {
	opener port.CategoryOpener
}

func RegisterCatalog(mux *http.ServeMux, opener port.CategoryOpener) {
	h := CatalogHandler{opener}
	mux.HandleFunc("GET /v1/catalog", h.GetCatalog)
}

// GetCatalog reads the category selector from the query string, the
// way the storefront page reads it from the URL, and returns the
// category section state with the resolved page header.
func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCatalog"
	log := slog.With("op", op)

	if !h.opener.CatalogAvailable() {
		http.Error(w, unavailableMsg, http.StatusServiceUnavailable)
		return
	}

	selector := r.URL.Query().Get("category")
	state, header := h.opener.OpenCategory(r.Context(), selector)

	res := toSectionResponse(state)
	res.Title = header.Title
	res.Description = header.Description
	writeJSON(w, log, res)

	log.Info("category opened",
		"selector", selector, "status", state.Status.String())
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
