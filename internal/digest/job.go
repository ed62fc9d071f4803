package digest

import (
	"context"
	"time"

	"feedbackservice/internal/model"
	"feedbackservice/internal/workflow"

	"go.uber.org/zap"
)

const (
	WorkflowName = "digest"

	StepFetchFeedback   = "fetch-feedback"
	StepGenerateSummary = "generate-summary"
	StepSendDiscord     = "send-discord"
	StepArchiveDigest   = "archive-digest"

	ReasonNoAnalyzedFeedback = "No analyzed feedback"
)

type FeedbackLister interface {
	ListAnalyzed(ctx context.Context, limit int) ([]*model.FeedbackItem, error)
}

type Archiver interface {
	Archive(ctx context.Context, rec Record) (string, error)
}

// Output is stored as the run's result.
type Output struct {
	Status     workflow.Status    `json:"status"`
	Reason     string             `json:"reason,omitempty"`
	Discord    *DeliveryResult    `json:"discord,omitempty"`
	Stats      *model.DigestStats `json:"stats,omitempty"`
	ArchiveKey string             `json:"archive_key,omitempty"`
}

// Job is the digest workflow body: fetch, summarize, send and optionally
// archive.
type Job struct {
	store      FeedbackLister
	generator  *Generator
	dispatcher *Dispatcher
	archiver   Archiver
	limit      int
	now        func() time.Time
}

// NewJob builds the job. archiver may be nil.
func NewJob(store FeedbackLister, generator *Generator, dispatcher *Dispatcher, archiver Archiver, limit int) *Job {
	return &Job{
		store:      store,
		generator:  generator,
		dispatcher: dispatcher,
		archiver:   archiver,
		limit:      limit,
		now:        time.Now,
	}
}

func (j *Job) Run(ctx context.Context, run *workflow.Run) (workflow.Result, error) {
	rows, err := workflow.Do(ctx, run, StepFetchFeedback, func(ctx context.Context) ([]*model.FeedbackItem, error) {
		return j.store.ListAnalyzed(ctx, j.limit)
	})
	if err != nil {
		return workflow.Result{}, err
	}

	if len(rows) == 0 {
		run.Logger().Info(ctx, "digest skipped, no analyzed feedback")
		return workflow.Result{
			Skipped: true,
			Output:  Output{Status: workflow.StatusSkipped, Reason: ReasonNoAnalyzedFeedback},
		}, nil
	}

	summary, err := workflow.Do(ctx, run, StepGenerateSummary, func(ctx context.Context) (string, error) {
		return j.generator.Daily(ctx, rows)
	})
	if err != nil {
		return workflow.Result{}, err
	}

	delivery, err := workflow.Do(ctx, run, StepSendDiscord, func(ctx context.Context) (DeliveryResult, error) {
		return j.dispatcher.Dispatch(ctx, summary, rows)
	})
	if err != nil {
		return workflow.Result{}, err
	}

	stats := model.ComputeDigestStats(rows)
	out := Output{
		Status:  workflow.StatusCompleted,
		Discord: &delivery,
		Stats:   &stats,
	}

	if j.archiver != nil {
		key, err := workflow.Do(ctx, run, StepArchiveDigest, func(ctx context.Context) (string, error) {
			return j.archiver.Archive(ctx, Record{
				RunID:    run.ID,
				Trigger:  run.Trigger(),
				Summary:  summary,
				Stats:    stats,
				Delivery: delivery,
				At:       j.now().UTC(),
			})
		})
		if err != nil {
			return workflow.Result{}, err
		}
		out.ArchiveKey = key
	}

	run.Logger().Info(ctx, "digest finished",
		zap.Int("rows", len(rows)),
		zap.Bool("sent", delivery.Sent),
		zap.Int("webhook_status", delivery.Status),
	)
	return workflow.Result{Output: out}, nil
}
