package app

import (
	"net/http"

	"go-staff/internal/config"
	"go-staff/internal/employee"
	"go-staff/internal/messaging/kafka"
	"go-staff/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp wires the store, services and routes onto the router. The
// returned cleanup releases the event publisher and must run on shutdown.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) func() {
	publisher := kafka.NewNoopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Kafka.Brokers)
		logger.Info("kafka event publishing enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
		)
	}

	repo := employee.NewMemoryRepository()
	service := employee.NewService(repo, publisher, logger)
	handler := employee.NewHandler(service, logger)

	router.Use(middleware.RequestID())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Employee API is up and running"})
	})

	employee.RegisterRoutes(
		router.Group("/"),
		handler,
		employee.RouteLimits{
			ReadPerSecond:  rate.Limit(cfg.RateLimit.ReadPerSecond),
			ReadBurst:      cfg.RateLimit.ReadBurst,
			WritePerSecond: rate.Limit(cfg.RateLimit.WritePerSecond),
			WriteBurst:     cfg.RateLimit.WriteBurst,
		},
		logger,
	)

	return func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("close event publisher failed", zap.Error(err))
		}
	}
}
