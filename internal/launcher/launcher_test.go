package launcher

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"feedbackservice/internal/ctxdata"
	"feedbackservice/internal/logging"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingRunner struct {
	mu       sync.Mutex
	runs     []string
	triggers []string
	err      error
}

func (r *recordingRunner) RunDigest(ctx context.Context, runID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trigger, _ := ctxdata.GetTrigger(ctx)
	r.runs = append(r.runs, runID)
	r.triggers = append(r.triggers, trigger)
	return r.err
}

func TestInlineLauncher(t *testing.T) {
	runner := &recordingRunner{}
	l := NewInlineLauncher(runner, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Launch(ctx, Request{RunID: "run-1", Trigger: "manual"}))
	cancel()
	require.NoError(t, l.Launch(context.Background(), Request{RunID: "run-2", Trigger: "schedule"}))

	require.NoError(t, l.Close())
	assert.ElementsMatch(t, []string{"run-1", "run-2"}, runner.runs)
	assert.ElementsMatch(t, []string{"manual", "schedule"}, runner.triggers)

	assert.ErrorIs(t, l.Launch(context.Background(), Request{RunID: "run-3"}), ErrClosed)
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaLauncher(t *testing.T) {
	w := &fakeWriter{}
	l := &KafkaLauncher{writer: w}
	at := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	require.NoError(t, l.Launch(context.Background(), Request{RunID: "run-1", Trigger: "manual", RequestedAt: at}))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("run-1"), w.msgs[0].Key)

	var req Request
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &req))
	assert.Equal(t, Request{RunID: "run-1", Trigger: "manual", RequestedAt: at}, req)

	w.err = errors.New("broker down")
	assert.Error(t, l.Launch(context.Background(), Request{RunID: "run-2"}))
}

type fakeReader struct {
	msgs      []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestConsumer_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	valid, err := json.Marshal(Request{RunID: "run-1", Trigger: "schedule"})
	require.NoError(t, err)

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafka.Message{
			{Offset: 1, Value: valid},
			{Offset: 2, Value: []byte("not-json")},
			{Offset: 3, Value: []byte(`{"trigger":"manual"}`)},
		},
	}
	runner := &recordingRunner{err: errors.New("webhook exploded")}
	c := &Consumer{reader: reader, runner: runner, logger: logging.NewNop()}

	c.Run(ctx)

	assert.Equal(t, []string{"run-1"}, runner.runs)
	assert.Equal(t, []string{"schedule"}, runner.triggers)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestTruncateBytes(t *testing.T) {
	assert.Equal(t, []byte("hello"), truncateBytes([]byte("hello"), 256))
	assert.Len(t, truncateBytes(make([]byte, 512), 256), 256)
	assert.Nil(t, truncateBytes(nil, 256))
}
