package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"notion-share-sync/pkg/log"
)

// Trace puts a trace id into the request context, reusing X-Request-ID when the caller sent one.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := log.WithTraceID(c.Request.Context(), c.GetHeader(HeaderRequestID))
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, log.TraceID(ctx))
		c.Next()
	}
}

// Logging logs one line per request with the request's trace id.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s %d %s ip=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
