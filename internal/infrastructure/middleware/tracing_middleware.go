package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"metahub/pkg/logger"
	"metahub/pkg/tracing"
	"metahub/pkg/utils"
)

// TracingMiddleware opens a span per request, tags the request with a
// generated id (echoed in the X-Request-ID header) and logs completion
// with both correlation ids attached.
func TracingMiddleware(log *zap.SugaredLogger) gin.HandlerFunc {
	ctxLog := logger.NewContextLogger(log)

	return func(c *gin.Context) {
		ctx, span := tracing.TraceHTTPRequest(c.Request.Context(), c.Request.Method, c.FullPath())
		defer span.End()

		requestID := utils.GenerateRequestID()
		c.Writer.Header().Set("X-Request-ID", requestID)
		ctx = logger.WithRequestID(ctx, requestID)

		span.SetAttributes(
			attribute.String("http.request_id", requestID),
			attribute.String("http.scheme", c.Request.URL.Scheme),
			attribute.String("http.host", c.Request.Host),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.remote_addr", c.ClientIP()),
		)

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		span.SetAttributes(
			attribute.Int("http.status_code", c.Writer.Status()),
			attribute.Int64("http.response_size", int64(c.Writer.Size())),
			attribute.Int64("http.duration_ms", duration.Milliseconds()),
		)

		if c.Writer.Status() >= 400 {
			span.SetStatus(codes.Error, c.Errors.String())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		ctxLog.RequestCompleted(ctx, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	}
}
