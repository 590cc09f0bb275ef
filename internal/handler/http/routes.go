package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(middleware.Compress(5, "text/html", "application/json"))

	router.Get("/", h.index)
	router.Get("/health", h.health)
	router.Get("/version", h.getVersion)

	router.Route("/partials", func(r chi.Router) {
		r.Post("/search", h.searchPartial)
		r.Post("/answer", h.answerPartial)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
