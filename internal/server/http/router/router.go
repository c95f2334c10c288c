package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/skobelin/paytrack/internal/bus"
	"github.com/skobelin/paytrack/internal/config"
	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/server/http/dto"
	"github.com/skobelin/paytrack/internal/server/http/handlers"
	"github.com/skobelin/paytrack/internal/server/http/middleware"
)

// HealthChecker reports availability of the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, feed *bus.Broadcaster, health HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	})

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	transactionHandler := handlers.NewTransactionHandler(facade)
	streamHandler := handlers.NewStreamHandler(feed, cfg.CORSOrigin, logger)

	api := engine.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.PATCH("/:id", orderHandler.UpdateStatus)

	transactions := api.Group("/transactions")
	transactions.Use(middleware.AuthRequired(facade))
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", middleware.RoleRequired(model.RoleAdmin), transactionHandler.List)

	// The live feed stays ungated like the dashboard socket it replaces.
	api.GET("/stream", streamHandler.Serve)

	return engine
}
