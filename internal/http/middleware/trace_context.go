package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/giftlane/souvenirs-backend/internal/platform/ctxutil"
)

const (
	RequestIDHeader = "X-Request-ID"
	TraceIDHeader   = "X-Trace-ID"
)

// TraceContext tags every request with a request id, honoring one supplied
// by the caller so ids survive proxy hops, and echoes the otel trace id
// when a span is recording. Both land in the request context for the
// layers below.
func TraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if reqID == "" {
			reqID = uuid.NewString()
		}
		traceID := ""
		if spanCtx := trace.SpanContextFromContext(c.Request.Context()); spanCtx.HasTraceID() {
			traceID = spanCtx.TraceID().String()
		}

		ctx := ctxutil.WithRequestInfo(c.Request.Context(), &ctxutil.RequestInfo{
			TraceID:   traceID,
			RequestID: reqID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Set("request_id", reqID)
		c.Writer.Header().Set(RequestIDHeader, reqID)
		if traceID != "" {
			c.Set("trace_id", traceID)
			c.Writer.Header().Set(TraceIDHeader, traceID)
		}
		c.Next()
	}
}
