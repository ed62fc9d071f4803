package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"feedbackservice/internal/cache"
	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/logging"

	"go.uber.org/zap"
)

type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusErrored   Status = "errored"
)

// Run triggers.
const (
	TriggerManual   = "manual"
	TriggerSchedule = "schedule"
)

func (s Status) Done() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// Instance is the persisted state of one workflow run.
type Instance struct {
	ID        string          `json:"id"`
	Workflow  string          `json:"workflow"`
	Trigger   string          `json:"trigger,omitempty"`
	Status    Status          `json:"status"`
	Steps     []string        `json:"steps"`
	Output    json.RawMessage `json:"output,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Result is what a workflow body returns when it finishes without error.
type Result struct {
	Skipped bool
	Output  any
}

type Func func(ctx context.Context, run *Run) (Result, error)

type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
	TTL         time.Duration
}

// Engine stores run instances and memoized step results in a cache.
type Engine struct {
	cache  cache.Cache
	opts   Options
	logger *logging.Logger
	now    func() time.Time
}

func NewEngine(c cache.Cache, opts Options, logger *logging.Logger) *Engine {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	return &Engine{
		cache:  c,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

func instanceKey(id string) string {
	return "workflow:" + id
}

func stepKey(id, step string) string {
	return "workflow:" + id + ":step:" + step
}

func (e *Engine) Create(ctx context.Context, id, workflow, trigger string) (*Instance, error) {
	now := e.now().UTC()
	inst := &Instance{
		ID:        id,
		Workflow:  workflow,
		Trigger:   trigger,
		Status:    StatusQueued,
		Steps:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := e.save(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

func (e *Engine) Get(ctx context.Context, id string) (*Instance, error) {
	data, ok, err := e.cache.Get(ctx, instanceKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	if !ok {
		return nil, errdefs.ErrRunNotFound
	}
	inst := &Instance{}
	if err := json.Unmarshal(data, inst); err != nil {
		return nil, fmt.Errorf("failed to decode run %s: %w", id, err)
	}
	return inst, nil
}

// Execute runs fn for the instance id. A finished instance is returned as
// is; a queued, running or errored one is (re)run, replaying memoized steps.
func (e *Engine) Execute(ctx context.Context, id string, fn Func) (*Instance, error) {
	inst, err := e.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx, e.logger).With(zap.String("run_id", id), zap.String("workflow", inst.Workflow))
	if inst.Status.Done() {
		logger.Info(ctx, "run already finished", zap.String("status", string(inst.Status)))
		return inst, nil
	}

	inst.Status = StatusRunning
	inst.Error = ""
	if err := e.save(ctx, inst); err != nil {
		return nil, err
	}
	logger.Info(ctx, "run started")

	run := &Run{ID: id, engine: e, instance: inst, logger: logger}
	res, runErr := fn(ctx, run)

	switch {
	case runErr != nil:
		inst.Status = StatusErrored
		inst.Error = runErr.Error()
	case res.Skipped:
		inst.Status = StatusSkipped
	default:
		inst.Status = StatusCompleted
	}
	if runErr == nil && res.Output != nil {
		out, err := json.Marshal(res.Output)
		if err != nil {
			return nil, fmt.Errorf("failed to encode run output: %w", err)
		}
		inst.Output = out
	}

	// The run's own error takes precedence over a failed status write.
	if err := e.save(ctx, inst); err != nil && runErr == nil {
		return nil, err
	}
	if runErr != nil {
		logger.Error(ctx, "run failed", zap.Error(runErr))
		return inst, runErr
	}
	logger.Info(ctx, "run finished", zap.String("status", string(inst.Status)))
	return inst, nil
}

func (e *Engine) save(ctx context.Context, inst *Instance) error {
	inst.UpdatedAt = e.now().UTC()
	data, err := json.Marshal(inst)
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", inst.ID, err)
	}
	if err := e.cache.Set(ctx, instanceKey(inst.ID), data, e.opts.TTL); err != nil {
		return fmt.Errorf("failed to store run %s: %w", inst.ID, err)
	}
	return nil
}

// Run is the handle a workflow body uses to execute its steps.
type Run struct {
	ID       string
	engine   *Engine
	instance *Instance
	logger   *logging.Logger
}

func (r *Run) Trigger() string {
	return r.instance.Trigger
}

func (r *Run) Logger() *logging.Logger {
	return r.logger
}

// Do runs a named step once per run. A stored result is decoded and returned
// without calling fn; otherwise fn is retried on retriable errors and its
// result is stored before Do returns.
func Do[T any](ctx context.Context, run *Run, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	e := run.engine
	key := stepKey(run.ID, name)

	data, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("step %s: failed to load result: %w", name, err)
	}
	if ok {
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, fmt.Errorf("step %s: failed to decode result: %w", name, err)
		}
		run.logger.Debug(ctx, "step replayed", zap.String("step", name))
		return out, nil
	}

	start := e.now()
	out, err := RetryWithBackoff(ctx, e.opts.MaxAttempts, e.opts.BaseDelay, func() (T, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, fmt.Errorf("step %s: %w", name, err)
	}

	data, err = json.Marshal(out)
	if err != nil {
		return zero, fmt.Errorf("step %s: failed to encode result: %w", name, err)
	}
	if err := e.cache.Set(ctx, key, data, e.opts.TTL); err != nil {
		return zero, fmt.Errorf("step %s: failed to store result: %w", name, err)
	}

	run.instance.Steps = append(run.instance.Steps, name)
	if err := e.save(ctx, run.instance); err != nil {
		run.logger.Warn(ctx, "failed to record step", zap.String("step", name), zap.Error(err))
	}
	run.logger.Debug(ctx, "step completed", zap.String("step", name), zap.Duration("elapsed", e.now().Sub(start)))
	return out, nil
}
