package ctxutil

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// Trace returns a gin middleware that attaches a trace id to the request
// context, reusing the incoming X-Trace-ID header when present.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithGinContext(c.Request.Context(), c)
		if traceID := strings.TrimSpace(c.GetHeader(TraceIDHeader)); traceID != "" {
			ctx = SetTraceID(ctx, traceID)
		}
		ctx, traceID := EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}

// ClientIP gets client IP from a gin context
func ClientIP(c *gin.Context) string {
	// X-Forwarded-For may contain multiple IPs, take the first one
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip, _, _ := strings.Cut(xff, ",")
		if ip = strings.TrimSpace(ip); ip != "" {
			return ip
		}
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	if c.Request != nil {
		return ipFromAddr(c.Request.RemoteAddr)
	}
	return "unknown"
}

// ipFromAddr extracts IP from address string
func ipFromAddr(addr string) string {
	if addr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
