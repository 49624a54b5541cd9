package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"rental_quotes/internal/auth"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/pkg"

	"github.com/gin-gonic/gin"
)

// ContextKeyCaller holds the resolved entities.Caller in the Gin context.
const ContextKeyCaller = "caller"

var (
	errAuthRequired  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header required", http.StatusUnauthorized)
	errInvalidBearer = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errAdminRequired = pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator privileges required", http.StatusForbidden)
)

// CallerFromContext returns the caller set by the auth middlewares, or Anonymous.
func CallerFromContext(c *gin.Context) entities.Caller {
	if v, ok := c.Get(ContextKeyCaller); ok {
		if caller, ok := v.(entities.Caller); ok {
			return caller
		}
	}
	return entities.Anonymous
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// OptionalAuth resolves the caller when a valid bearer token is present and
// lets the request through as Anonymous otherwise.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := auth.ValidateJWT(token, jwtSecret); err == nil {
				c.Set(ContextKeyCaller, claims.Caller())
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errInvalidBearer.HTTPStatus, errInvalidBearer.ToHTTPError())
			return
		}
		claims, err := auth.ValidateJWT(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidBearer.HTTPStatus, errInvalidBearer.ToHTTPError())
			return
		}
		c.Set(ContextKeyCaller, claims.Caller())
		c.Next()
	}
}

// RequireAdmin checks for admin privileges. RequireAuth must run first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CallerFromContext(c).IsAdmin {
			c.AbortWithStatusJSON(errAdminRequired.HTTPStatus, errAdminRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CronAuth gates scheduler endpoints behind "Bearer <secret>". An unset secret
// closes the endpoint.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if secret == "" || !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
