package middleware

import (
	"go-staff/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger derives a request-scoped logger carrying the request id and
// stores it in the request context for the layers below. Expects RequestID
// to have run first; falls back to whatever is in the context otherwise.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = contextutil.GetRequestID(c.Request.Context())
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
		)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
