package router

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/actuallystonmai/course-finder/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// AccessLog receives one line per request. The caller owns it.
	AccessLog io.Writer
	Timeout   time.Duration
	// TrustProxy honours X-Forwarded-For / X-Real-IP. Enable only behind a
	// proxy that overwrites those headers.
	TrustProxy bool
}

func Setup(h *handler.Handler, opts Options) http.Handler {
	if opts.AccessLog == nil {
		opts.AccessLog = io.Discard
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(opts.AccessLog, "", 0),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}

	// Routes
	r.Get("/courses", h.GetRecommendations)
	r.Get("/courses/popular", h.GetPopular)
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{category}/courses", h.GetCategoryCourses)
	r.Get("/health", h.Health)

	return r
}
