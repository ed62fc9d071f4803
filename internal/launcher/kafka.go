package launcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaLauncher publishes requests for cmd/worker to pick up.
type KafkaLauncher struct {
	writer messageWriter
}

func NewKafkaLauncher(brokers []string, topic string) *KafkaLauncher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &KafkaLauncher{writer: writer}
}

func (l *KafkaLauncher) Launch(ctx context.Context, req Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal digest request: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(req.RunID),
		Value: data,
		Time:  time.Now(),
	}
	if err := l.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to send digest request: %w", err)
	}
	return nil
}

func (l *KafkaLauncher) Close() error {
	return l.writer.Close()
}
