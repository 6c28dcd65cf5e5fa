package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With"
)

// CORS answers preflight requests and adds the allow headers to every response.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		c.Header("Access-Control-Allow-Origin", m.allowOrigin(origin))
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func (m Middleware) allowOrigin(origin string) string {
	if len(m.cfg.AllowedOrigins) == 0 || slices.Contains(m.cfg.AllowedOrigins, "*") {
		return "*"
	}
	if slices.Contains(m.cfg.AllowedOrigins, origin) {
		return origin
	}
	return m.cfg.AllowedOrigins[0]
}
