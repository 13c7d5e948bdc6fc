package jwtauth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor returns a gRPC unary server interceptor for bearer
// token authentication. Failures return codes.Unauthenticated with the same
// message JWTAuth would send.
func UnaryServerInterceptor(cfg *Config) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		startTime := time.Now()

		md, _ := metadata.FromIncomingContext(ctx)

		requestID := uuid.NewString()
		if ids := md.Get("x-request-id"); len(ids) > 0 && ids[0] != "" {
			requestID = ids[0]
		}

		token, extractErr := extractTokenFromMetadata(md)
		claims, err := authenticate(cfg, "grpc", requestID, token, extractErr, startTime)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, FailureMessage(err))
		}

		ctx = WithClaims(ctx, claims)
		ctx = WithRequestID(ctx, requestID)

		return handler(ctx, req)
	}
}
