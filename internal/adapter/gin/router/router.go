package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-container-demo/internal/adapter/gin/handler"
	"user-container-demo/internal/adapter/gin/middleware"
	grpcmiddleware "user-container-demo/internal/adapter/grpc/middleware"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "user-container-demo"

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	rateLimiter *grpcmiddleware.RateLimiter,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": ServiceName,
		})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.RateLimiter(rateLimiter, log))
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.AddUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/render", userHandler.RenderUsers)
		}
		v1.GET("/kinds", userHandler.ListKinds)
	}

	return router
}
