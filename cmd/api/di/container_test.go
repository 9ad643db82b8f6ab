package di

import (
	"context"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-container-demo/internal/config"
	"user-container-demo/internal/usecase/user"
)

func testConfig() *config.Config {
	return &config.Config{
		DB: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		App:    config.AppConfig{GRPCPort: "50051", HTTPPort: "8080", ShutdownTimeoutSeconds: 1},
		Logger: config.LoggerConfig{Level: "info", SlowQuerySeconds: 1},
	}
}

func TestNewContainer_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Driver = "oracle"

	_, err := NewContainer(context.Background(), cfg, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "config validation failed")
}

func TestNewContainer_UseCaseReachesStore(t *testing.T) {
	ctx := context.Background()
	c, err := NewContainer(ctx, testConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.UserUC.RenderUsers(ctx, user.RenderUsersRequest{Kind: "list"})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Count)
}

func TestInitServers_WithoutRateLimit(t *testing.T) {
	ctx := context.Background()
	c, err := NewContainer(ctx, testConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.InitServers(ctx))
	assert.NotNil(t, c.GinHandler)
	assert.NotNil(t, c.GRPCService)
	assert.Nil(t, c.RedisClient)
	assert.False(t, c.RateLimiter.Enabled())
}

func TestInitServers_WithRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Redis = config.RedisConfig{Host: host, Port: port, PoolSize: 2}
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 5, BurstCapacity: 5}

	ctx := context.Background()
	c, err := NewContainer(ctx, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.InitServers(ctx))
	assert.NotNil(t, c.RedisClient)
	assert.True(t, c.RateLimiter.Enabled())
}
