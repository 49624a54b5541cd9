package middleware

import (
	"net/http"

	"rental_quotes/internal/infrastructure/ratelimit"
	"rental_quotes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, please try again later", http.StatusTooManyRequests)

// RateLimit throttles requests per client IP under the given resource name.
// When the limiter store fails the request is let through.
func RateLimit(limiter ratelimit.Limiter, resource string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		key := resource + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", zap.String("resource", resource), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
