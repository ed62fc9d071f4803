//go:generate mockgen -source=feedback.go -destination=../mocks/handler_service_mock.go -package=mocks

package handler

import (
	"context"
	"fmt"
	"net/http"

	"feedbackservice/internal/model"
	"feedbackservice/internal/workflow"

	"github.com/go-chi/chi/v5"
)

type FeedbackService interface {
	ListFeedback(ctx context.Context) ([]*model.FeedbackItem, error)
	CreateFeedback(ctx context.Context, input *model.CreateFeedbackInput) (*model.FeedbackItem, error)
	AnalyzeFeedback(ctx context.Context, id int64) (*model.FeedbackItem, error)
	BackfillAnalysis(ctx context.Context) (*model.BackfillReport, error)
	Summarize(ctx context.Context) (string, error)
	StartDigest(ctx context.Context, trigger string) (*workflow.Instance, error)
	GetDigestRun(ctx context.Context, id string) (*workflow.Instance, error)
}

type FeedbackHandler struct {
	s FeedbackService
}

func NewFeedbackHandler(s FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{s: s}
}

func (h *FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Get("/feedback", h.ListFeedback)
	r.Post("/feedback", h.CreateFeedback)
	r.Post("/analyze", h.Analyze)
	r.Post("/analyze/backfill", h.Backfill)
	r.Post("/summary", h.Summary)
	r.Post("/send-digest", h.SendDigest)
	r.Get("/digests/{id}", h.GetDigest)
}

type analyzeRequest struct {
	ID *int64 `json:"id"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type sendDigestResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.s.ListFeedback(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var input model.CreateFeedbackInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.s.CreateFeedback(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *FeedbackHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.ID == nil {
		writeError(w, r, fmt.Errorf("%w: id is required", ErrBadRequest))
		return
	}
	item, err := h.s.AnalyzeFeedback(r.Context(), *req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *FeedbackHandler) Backfill(w http.ResponseWriter, r *http.Request) {
	report, err := h.s.BackfillAnalysis(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *FeedbackHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.s.Summarize(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary})
}

func (h *FeedbackHandler) SendDigest(w http.ResponseWriter, r *http.Request) {
	inst, err := h.s.StartDigest(r.Context(), workflow.TriggerManual)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sendDigestResponse{Message: "Digest workflow started", ID: inst.ID})
}

func (h *FeedbackHandler) GetDigest(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	inst, err := h.s.GetDigestRun(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inst)
}
