package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ritu-rajkumar/Ri-Eat/internal/tracing"
)

const adminCtxKey = "admin"

// authMiddleware requires a valid bearer token and stores the resolved admin
// on the gin context.
func authMiddleware(admins adminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		a, err := admins.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(adminCtxKey, a)
		c.Next()
	}
}

// tracingMiddleware opens a span per request using the route template as the
// span name. A no-op when tracing is not initialized.
func tracingMiddleware() gin.HandlerFunc {
	tracer := otel.Tracer(tracing.TracerName())
	return func(c *gin.Context) {
		name := c.Request.Method + " " + c.FullPath()
		ctx, span := tracer.Start(c.Request.Context(), name)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(
			attribute.Int("http.status_code", c.Writer.Status()),
			attribute.String("http.method", c.Request.Method),
		)
	}
}
