package handler

import (
	"encoding/json"
	"net/http"

	"github.com/actuallystonmai/course-finder/internal/logger"
	"github.com/actuallystonmai/course-finder/internal/service"
)

type Handler struct {
	service *service.Service
	log     *logger.Logger
}

func NewHandler(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{service: svc, log: log.Component("handler")}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
