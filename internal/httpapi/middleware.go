// Package httpapi はセッション照会・運用操作のREST APIを提供する。
package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ali-Mohammed/openRadius-sub014/pkg/httputil"
)

const traceIDHeader = "X-Trace-ID"

// TraceIDKey はコンテキストにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// TraceIDMiddleware はX-Trace-IDヘッダからトレースIDを取得する。
// ヘッダがない場合は新規採番する。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(TraceIDKey, traceID)
		c.Next()
	}
}

// LoggingMiddleware はリクエストログを出力する。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		traceID, _ := c.Get(TraceIDKey)

		slog.Info("request completed",
			"trace_id", traceID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"http_status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
		)
	}
}

// RecoveryMiddleware はパニックからの復旧を行う。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				traceID, _ := c.Get(TraceIDKey)
				slog.Error("panic recovered",
					"trace_id", traceID,
					"error", err,
				)
				httputil.AbortWithError(c, httputil.InternalServerError("An unexpected error occurred"))
			}
		}()
		c.Next()
	}
}
