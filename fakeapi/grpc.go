package fakeapi

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Wang-tianhao/dummyjson-apitest-go/jwtauth"
)

// NewGRPCServer serves grpc.health.v1.Health behind the bearer interceptor,
// using the same access-token rules as the HTTP routes. The returned health
// server lets the caller flip the serving status on shutdown.
func (s *Server) NewGRPCServer(opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(jwtauth.UnaryServerInterceptor(s.auth))}, opts...)
	srv := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}
