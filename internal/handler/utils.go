package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var ErrBadRequest = errors.New("bad request")

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, errdefs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrNoAnalyzedFeedback):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrNotFound), errors.Is(err, errdefs.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage is the text clients see for err.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, errdefs.ErrNotFound):
		return "Feedback not found"
	case errors.Is(err, errdefs.ErrRunNotFound):
		return "Digest run not found"
	case errors.Is(err, errdefs.ErrAnalysisParse):
		return "Failed to parse AI response"
	case errors.Is(err, errdefs.ErrNoAnalyzedFeedback):
		return "No analyzed feedback yet"
	case errors.Is(err, ErrBadRequest), errors.Is(err, errdefs.ErrInvalidArgument):
		return err.Error()
	}
	return http.StatusText(mapErr(err))
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := mapErr(err)
	if logger, ok := logging.GetFromContext(r.Context()); ok {
		if statusCode >= http.StatusInternalServerError {
			logger.Error(r.Context(), "request failed", zap.Error(err))
		} else {
			logger.Info(r.Context(), "request rejected", zap.Error(err))
		}
	}
	writeErrorJSON(w, statusCode, errorMessage(err))
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}
	return nil
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}
