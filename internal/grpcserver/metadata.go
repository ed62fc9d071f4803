package grpcserver

import (
	"context"

	"feedbackservice/internal/ctxdata"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func NewMetadataUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("x-trace-id"); len(values) > 0 {
				ctx = ctxdata.WithTraceID(ctx, values[0])
			}
		}

		return handler(ctx, req)
	}
}
