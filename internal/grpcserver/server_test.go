package grpcserver

import (
	"context"
	"net"
	"testing"

	"feedbackservice/internal/ctxdata"
	"feedbackservice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

func TestHealth(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := New(logging.NewNop())

	served := make(chan error, 1)
	go func() { served <- srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	srv.Shutdown()
	assert.NoError(t, <-served)
}

func TestMetadataUnaryInterceptor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-trace-id", "trace-123"))

	var got string
	_, err := NewMetadataUnaryInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = ctxdata.GetTraceID(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "trace-123", got)
}
