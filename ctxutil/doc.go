// Package ctxutil provides context utilities for request-scoped values.
//
// # Trace IDs
//
// Every request handled by the API carries a trace id. The Trace middleware
// reads it from the X-Trace-ID header or generates a new one, and the logger
// attaches it to every entry written with that context:
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	logger.Info(ctx, "page fetched", "trace", traceID)
//
// # Gin Integration
//
// Values set through SetValue are mirrored into the *gin.Context when one is
// embedded in the context:
//
//	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
//	ctx = ctxutil.SetTraceID(ctx, "abc")
package ctxutil
