package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type triggerKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	triggerKeyInstance = triggerKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

// WithTrigger records what started a digest run ("manual", "schedule").
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, triggerKeyInstance, trigger)
}

func GetTrigger(ctx context.Context) (string, bool) {
	v := ctx.Value(triggerKeyInstance)
	trigger, ok := v.(string)
	return trigger, ok
}
