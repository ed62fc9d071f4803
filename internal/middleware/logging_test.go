package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"feedbackservice/internal/ctxdata"
	"feedbackservice/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := logging.New(zap.New(core))

	var seenTrace string
	var hasLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace, _ = ctxdata.GetTraceID(r.Context())
		_, hasLogger = logging.GetFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	NewLoggingMiddleware(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feedback", nil))

	traceID := rec.Header().Get("X-Trace-Id")
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, traceID, seenTrace)
	assert.True(t, hasLogger)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/api/feedback", fields["path"])
	assert.Equal(t, traceID, fields["request_id"])
}

func TestLoggingMiddleware_RouteFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := logging.New(zap.New(core))

	r := chi.NewRouter()
	r.Use(NewLoggingMiddleware(logger))
	r.Get("/api/digests/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/feedback", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/digests/run-42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/feedback", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 2)

	digest := entries[0].ContextMap()
	assert.Equal(t, "/api/digests/{id}", digest["route"])
	assert.Equal(t, "run-42", digest["run_id"])

	list := entries[1].ContextMap()
	assert.Equal(t, "/api/feedback", list["route"])
	_, ok := list["run_id"]
	assert.False(t, ok)
}
