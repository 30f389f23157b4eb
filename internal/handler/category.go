package handler

import (
	"net/http"

	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/go-chi/chi/v5"
)

// GET /categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: domain.Categories()})
}

// GET /categories/{category}/courses
func (h *Handler) GetCategoryCourses(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRecommendationResponse(rec))
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	mode := "static"
	if h.service.ExternalMode() {
		mode = "external"
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Mode: mode})
}
