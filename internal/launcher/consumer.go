package launcher

import (
	"context"
	"encoding/json"

	"feedbackservice/internal/ctxdata"
	"feedbackservice/internal/logging"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer executes digest requests from the topic. A message is committed
// only after its run returns, so a crash mid-run redelivers it.
type Consumer struct {
	reader messageReader
	runner Runner
	logger *logging.Logger
}

func NewConsumer(brokers []string, topic, groupID string, runner Runner, logger *logging.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
	return &Consumer{reader: reader, runner: runner, logger: logger}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info(ctx, "Consumer shutting down")
				return
			}
			c.logger.Error(ctx, "Failed to fetch message", zap.Error(err))
			continue
		}

		c.processMessage(ctx, msg)

		if ctx.Err() != nil {
			c.logger.Info(ctx, "Consumer shutting down, message left uncommitted", zap.Int64("offset", msg.Offset))
			return
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error(ctx, "Failed to commit message", zap.Error(err))
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	var req Request
	if err := json.Unmarshal(msg.Value, &req); err != nil || req.RunID == "" {
		c.logger.Warn(ctx, "Dropping malformed digest request",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.ByteString("value", truncateBytes(msg.Value, 256)),
		)
		return
	}

	runCtx := ctxdata.WithTraceID(ctxdata.WithTrigger(ctx, req.Trigger), req.RunID)
	c.logger.Info(runCtx, "Received digest request",
		zap.String("run_id", req.RunID),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
	)
	if err := c.runner.RunDigest(runCtx, req.RunID); err != nil {
		c.logger.Error(runCtx, "digest run failed", zap.String("run_id", req.RunID), zap.Error(err))
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func truncateBytes(data []byte, n int) []byte {
	if len(data) <= n {
		return data
	}
	return data[:n]
}
