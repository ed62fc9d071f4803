package middleware

import (
	"net/http"
	"time"

	"feedbackservice/internal/ctxdata"
	"feedbackservice/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func NewLoggingMiddleware(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			traceID, err := uuid.NewV7()
			if err != nil {
				traceID = uuid.New()
			}

			r.Header.Set("X-Trace-Id", traceID.String())

			ctx := ctxdata.WithTraceID(r.Context(), traceID.String())
			ctx = logging.ContextWithLogger(ctx, logger)
			r = r.WithContext(ctx)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Trace-Id", traceID.String())

			next.ServeHTTP(sw, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
			}
			logger.Info(ctx, "request completed", append(fields, routeFields(r)...)...)
		})
	}
}

// routeFields names the matched route and the digest run it targets.
func routeFields(r *http.Request) []zap.Field {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	var fields []zap.Field
	if pattern := rctx.RoutePattern(); pattern != "" {
		fields = append(fields, zap.String("route", pattern))
	}
	if id := rctx.URLParam("id"); id != "" {
		fields = append(fields, zap.String("run_id", id))
	}
	return fields
}
