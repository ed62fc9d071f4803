package logging

import (
	"context"

	"feedbackservice/internal/ctxdata"

	"go.uber.org/zap"
)

type loggerKey struct{}

const (
	requestID = "request_id"
	trigger   = "trigger"
)

var (
	loggerKeyInstance = loggerKey{}
)

type Logger struct {
	l *zap.Logger
}

func New(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger}
}

// NewZap builds the process logger: development encoder with debug level, or
// the production JSON encoder.
func NewZap(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func NewNop() *Logger {
	return &Logger{zap.NewNop()}
}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKeyInstance, logger)
}

func GetFromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(loggerKeyInstance).(*Logger)
	return logger, ok
}

// FromContext returns the context logger or fallback when none is attached.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if logger, ok := GetFromContext(ctx); ok {
		return logger
	}
	return fallback
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l.l.With(fields...)}
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithTraceID(ctx, fields)
	l.l.Debug(msg, fields...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithTraceID(ctx, fields)
	l.l.Info(msg, fields...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithTraceID(ctx, fields)
	l.l.Warn(msg, fields...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithTraceID(ctx, fields)
	l.l.Error(msg, fields...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithTraceID(ctx, fields)
	l.l.Fatal(msg, fields...)
}

func fieldsWithTraceID(ctx context.Context, fields []zap.Field) []zap.Field {
	if traceId, ok := ctxdata.GetTraceID(ctx); ok {
		fields = append(fields, zap.String(requestID, traceId))
	}
	if t, ok := ctxdata.GetTrigger(ctx); ok {
		fields = append(fields, zap.String(trigger, t))
	}
	return fields
}
