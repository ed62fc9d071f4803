package handler

import (
	"net/http"

	"feedbackservice/internal/logging"
	"feedbackservice/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(feedbackHandler *FeedbackHandler, logger *logging.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		feedbackHandler.RegisterRoutes(r)
	})
	return r
}
