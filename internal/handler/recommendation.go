package handler

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/actuallystonmai/course-finder/internal/domain"
)

const sessionHeader = "X-Session-ID"

// GET /courses?interest=...
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	interest := strings.TrimSpace(r.URL.Query().Get("interest"))
	if interest == "" {
		writeError(w, http.StatusBadRequest, "empty_interest", "Interest parameter is required")
		return
	}

	rec, err := h.service.Recommend(r.Context(), sessionID(r), interest)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := newRecommendationResponse(rec)
	resp.Interest = interest
	writeJSON(w, http.StatusOK, resp)
}

// GET /courses/popular
func (h *Handler) GetPopular(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Popular(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRecommendationResponse(rec))
}

func newRecommendationResponse(rec *domain.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		Category: rec.Category,
		Source:   rec.Source,
		Courses:  rec.Courses,
		Notice:   rec.Notice,
		Metadata: domain.RecommendationMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(rec.Courses),
		},
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyInterest):
		writeError(w, http.StatusBadRequest, "empty_interest", "Interest parameter is required")
	case errors.Is(err, domain.ErrUnknownCategory):
		writeError(w, http.StatusNotFound, "unknown_category", "Category does not exist")
	case errors.Is(err, domain.ErrSubmissionInFlight):
		writeError(w, http.StatusConflict, "submission_in_flight",
			"A search is already running for this session, please wait for it to finish")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
	default:
		h.log.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

// sessionID identifies the submitter: an explicit header wins, otherwise
// the client address.
func sessionID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(sessionHeader)); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
