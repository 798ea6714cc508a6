package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/domain/model"
)

// RequestLogger emits one structured line per request. Authenticated requests
// also carry the acting user's id and role.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Int("size", c.Writer.Size()),
			slog.Duration("latency", time.Since(start)),
		}
		if v, ok := c.Get(IdentityContextKey); ok {
			if identity, ok := v.(model.Identity); ok {
				args = append(args,
					slog.Int64("user_id", identity.UserID),
					slog.String("role", string(identity.Role)),
				)
			}
		}
		logger.Info("http request", args...)
	}
}
