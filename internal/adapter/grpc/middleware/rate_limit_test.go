package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// setupTestRedis creates a miniredis instance with a frozen clock
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	mr.SetTime(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func mockHandler(ctx context.Context, req any) (any, error) {
	return "success", nil
}

func peerContext(ip string) context.Context {
	addr, _ := net.ResolveTCPAddr("tcp", ip+":12345")
	return peer.NewContext(context.Background(), &peer.Peer{Addr: addr})
}

var renderInfo = &grpc.UnaryServerInfo{FullMethod: "/userdemo.v1.UserDemo/RenderUsers"}

func TestRateLimiter_WithinBurst(t *testing.T) {
	client, _ := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 1, BurstCapacity: 5, Enabled: true}, zaptest.NewLogger(t))
	interceptor := rl.UnaryInterceptor()

	for i := 0; i < 5; i++ {
		resp, err := interceptor(peerContext("127.0.0.1"), nil, renderInfo, mockHandler)
		require.NoError(t, err, "request %d", i+1)
		assert.Equal(t, "success", resp)
	}
}

func TestRateLimiter_ExceedBurst(t *testing.T) {
	client, _ := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 1, BurstCapacity: 3, Enabled: true}, zaptest.NewLogger(t))
	interceptor := rl.UnaryInterceptor()
	ctx := peerContext("127.0.0.1")

	for i := 0; i < 3; i++ {
		_, err := interceptor(ctx, nil, renderInfo, mockHandler)
		require.NoError(t, err)
	}

	resp, err := interceptor(ctx, nil, renderInfo, mockHandler)
	assert.Nil(t, resp)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.ResourceExhausted, st.Code())
	assert.Contains(t, st.Message(), "rate limit exceeded")
}

func TestRateLimiter_Refill(t *testing.T) {
	client, mr := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 2, BurstCapacity: 2, Enabled: true}, zaptest.NewLogger(t))
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		allowed, err := rl.Allow(ctx, "bucket")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := rl.Allow(ctx, "bucket")
	require.NoError(t, err)
	assert.False(t, allowed, "bucket should be empty")

	// half a second at 2 tokens/s refills exactly one token
	mr.SetTime(start.Add(500 * time.Millisecond))
	allowed, err = rl.Allow(ctx, "bucket")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = rl.Allow(ctx, "bucket")
	require.NoError(t, err)
	assert.False(t, allowed)

	// a long pause never grows the bucket beyond its capacity
	mr.SetTime(start.Add(time.Hour))
	for i := 0; i < 2; i++ {
		allowed, err = rl.Allow(ctx, "bucket")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err = rl.Allow(ctx, "bucket")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRateLimiter_Disabled(t *testing.T) {
	client, mr := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 1, BurstCapacity: 1, Enabled: false}, zaptest.NewLogger(t))
	interceptor := rl.UnaryInterceptor()

	for i := 0; i < 10; i++ {
		_, err := interceptor(peerContext("127.0.0.1"), nil, renderInfo, mockHandler)
		require.NoError(t, err)
	}
	assert.Empty(t, mr.Keys())
}

func TestRateLimiter_NilLimiterIsDisabled(t *testing.T) {
	var rl *RateLimiter
	assert.False(t, rl.Enabled())
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	client, _ := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 1, BurstCapacity: 1, Enabled: true}, zaptest.NewLogger(t))
	interceptor := rl.UnaryInterceptor()

	_, err := interceptor(peerContext("10.0.0.1"), nil, renderInfo, mockHandler)
	require.NoError(t, err)
	_, err = interceptor(peerContext("10.0.0.2"), nil, renderInfo, mockHandler)
	require.NoError(t, err)

	_, err = interceptor(peerContext("10.0.0.1"), nil, renderInfo, mockHandler)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestRateLimiter_XForwardedFor(t *testing.T) {
	client, mr := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 1, BurstCapacity: 1, Enabled: true}, zaptest.NewLogger(t))
	interceptor := rl.UnaryInterceptor()

	ctx := metadata.NewIncomingContext(peerContext("127.0.0.1"), metadata.Pairs("x-forwarded-for", "203.0.113.9"))
	_, err := interceptor(ctx, nil, renderInfo, mockHandler)
	require.NoError(t, err)

	assert.True(t, mr.Exists("ratelimit:tb:grpc:/userdemo.v1.UserDemo/RenderUsers:203.0.113.9"))
}

func TestRateLimiter_DifferentMethods(t *testing.T) {
	client, _ := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 1, BurstCapacity: 1, Enabled: true}, zaptest.NewLogger(t))
	interceptor := rl.UnaryInterceptor()
	ctx := peerContext("127.0.0.1")

	_, err := interceptor(ctx, nil, renderInfo, mockHandler)
	require.NoError(t, err)
	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/userdemo.v1.UserDemo/AddUser"}, mockHandler)
	require.NoError(t, err)
}

func TestRateLimiter_FailOpen(t *testing.T) {
	client, mr := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerSecond: 1, BurstCapacity: 1, Enabled: true}, zaptest.NewLogger(t))
	interceptor := rl.UnaryInterceptor()
	mr.Close()

	for i := 0; i < 3; i++ {
		resp, err := interceptor(peerContext("127.0.0.1"), nil, renderInfo, mockHandler)
		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	}
}
