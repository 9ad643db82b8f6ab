package di

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-container-demo/cmd/api/infrastructure"
	"user-container-demo/internal/adapter/db/gormstore"
	ginhandler "user-container-demo/internal/adapter/gin/handler"
	grpcadapter "user-container-demo/internal/adapter/grpc"
	"user-container-demo/internal/adapter/grpc/middleware"
	"user-container-demo/internal/config"
	"user-container-demo/internal/usecase/user"
	redisclient "user-container-demo/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	RateLimiter *middleware.RateLimiter
	GinHandler  *ginhandler.UserHandler
	GRPCService *grpcadapter.UserServiceServer
}

// NewContainer creates the record store and the use case on top of it.
// Network-facing pieces are added by InitServers.
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := gormstore.NewUserRepo(db, l)

	return &Container{
		Config: cfg,
		Logger: l,
		DB:     db,
		UserUC: user.New(repo, l),
	}, nil
}

// InitServers wires the REST handler, the gRPC service and, when enabled,
// the Redis backed rate limiter.
func (c *Container) InitServers(ctx context.Context) error {
	if c.Config.RateLimit.Enabled {
		rdb, err := infrastructure.NewRedisClient(ctx, c.Config, c.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
		c.RateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: c.Config.RateLimit.RequestsPerSecond,
				BurstCapacity:     c.Config.RateLimit.BurstCapacity,
				Enabled:           true,
			},
			c.Logger,
		)
	}

	c.GinHandler = ginhandler.NewUserHandler(c.UserUC, c.Logger)
	c.GRPCService = grpcadapter.NewUserServiceServer(c.UserUC, c.Logger)
	return nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
