package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginhandler "user-container-demo/internal/adapter/gin/handler"
	ginrouter "user-container-demo/internal/adapter/gin/router"
	grpcmiddleware "user-container-demo/internal/adapter/grpc/middleware"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	handler *ginhandler.UserHandler,
	rateLimiter *grpcmiddleware.RateLimiter,
	ginAddr string,
	l *zap.Logger,
) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	router := ginrouter.SetupRouter(handler, rateLimiter, l)

	l.Info("Gin REST API configured", zap.String("address", ginAddr))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
