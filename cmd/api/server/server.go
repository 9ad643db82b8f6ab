package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"user-container-demo/cmd/api/di"
)

// Server runs the gRPC and REST front ends side by side.
type Server struct {
	Logger          *zap.Logger
	GRPC            *grpc.Server
	Gin             *http.Server
	grpcAddr        string
	shutdownTimeout time.Duration
}

// New creates a new server instance from a container whose servers are initialized.
func New(c *di.Container) *Server {
	cfg := c.Config
	return &Server{
		Logger:          c.Logger,
		GRPC:            SetupGRPC(c.GRPCService, c.RateLimiter, c.Logger),
		Gin:             SetupGinServer(c.GinHandler, c.RateLimiter, ":"+cfg.App.HTTPPort, c.Logger),
		grpcAddr:        ":" + cfg.App.GRPCPort,
		shutdownTimeout: time.Duration(cfg.App.ShutdownTimeoutSeconds) * time.Second,
	}
}

// Run binds both listeners and serves until ctx is canceled or a server fails,
// then shuts both down gracefully.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	grpcLis, err := lc.Listen(ctx, "tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("failed to listen for gRPC on %s: %w", s.grpcAddr, err)
	}
	httpLis, err := lc.Listen(ctx, "tcp", s.Gin.Addr)
	if err != nil {
		_ = grpcLis.Close()
		return fmt.Errorf("failed to listen for HTTP on %s: %w", s.Gin.Addr, err)
	}

	return s.Serve(ctx, grpcLis, httpLis)
}

// Serve runs both servers on the given listeners.
func (s *Server) Serve(ctx context.Context, grpcLis, httpLis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.Logger.Info("gRPC server running", zap.String("address", grpcLis.Addr().String()))
		if err := s.GRPC.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.Logger.Info("Gin REST API running", zap.String("address", httpLis.Addr().String()))
		if err := s.Gin.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("gin server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

// shutdown stops both servers within the configured timeout.
func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.Logger.Info("starting graceful shutdown", zap.Duration("timeout", s.shutdownTimeout))

	var errs []error
	if err := s.Gin.Shutdown(shutdownCtx); err != nil {
		s.Logger.Error("failed to shutdown Gin server", zap.Error(err))
		errs = append(errs, fmt.Errorf("gin shutdown: %w", err))
	}

	stopped := make(chan struct{})
	go func() {
		s.GRPC.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		s.Logger.Warn("gRPC graceful stop timed out, forcing stop")
		s.GRPC.Stop()
	}

	return errors.Join(errs...)
}
