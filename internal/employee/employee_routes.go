package employee

import (
	"go-staff/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RouteLimits holds the per-route rate limits. Reads are allowed a higher
// rate than mutations.
type RouteLimits struct {
	ReadPerSecond  rate.Limit
	ReadBurst      int
	WritePerSecond rate.Limit
	WriteBurst     int
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	limits RouteLimits,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(limits.ReadPerSecond, limits.ReadBurst),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(limits.ReadPerSecond, limits.ReadBurst),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByIP(limits.WritePerSecond, limits.WriteBurst),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(limits.WritePerSecond, limits.WriteBurst),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(limits.WritePerSecond, limits.WriteBurst),
			handler.Delete,
		)
	}
}
