package server

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "user-container-demo/internal/adapter/grpc"
	"user-container-demo/internal/adapter/grpc/middleware"
	"user-container-demo/pkg/logger"
)

// SetupGRPC creates and configures the gRPC server
func SetupGRPC(svc grpcadapter.UserDemoServer, rateLimiter *middleware.RateLimiter, l *zap.Logger) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			rateLimiter.UnaryInterceptor(),
		),
	)
	grpcadapter.RegisterUserDemoServer(grpcServer, svc)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(grpcadapter.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	l.Info("gRPC service configured", zap.String("service", grpcadapter.ServiceName))
	return grpcServer
}
