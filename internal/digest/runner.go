package digest

import (
	"context"

	"feedbackservice/internal/workflow"
)

// Runner executes digest runs on an engine.
type Runner struct {
	engine *workflow.Engine
	job    *Job
}

func NewRunner(engine *workflow.Engine, job *Job) *Runner {
	return &Runner{engine: engine, job: job}
}

func (r *Runner) RunDigest(ctx context.Context, runID string) error {
	_, err := r.engine.Execute(ctx, runID, r.job.Run)
	return err
}
