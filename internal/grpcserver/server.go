package grpcserver

import (
	"fmt"
	"net"

	"feedbackservice/internal/logging"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server exposes the standard gRPC health service for the feedback service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

func New(logger *logging.Logger) *Server {
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(
			grpc_middleware.ChainUnaryServer(
				NewMetadataUnaryInterceptor(),
				logging.NewUnaryLoggingInterceptor(logger),
			),
		),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{grpc: grpcServer, health: healthServer}
}

func (s *Server) Serve(lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING and then drains in-flight calls.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
