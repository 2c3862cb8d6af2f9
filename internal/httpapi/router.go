package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *RegistryHandler) {
	engine.Use(TraceIDMiddleware())
	engine.Use(LoggingMiddleware())
	engine.Use(RecoveryMiddleware())

	// ヘルスチェック・メトリクス
	engine.GET("/health", h.HandleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := engine.Group("/api/v1")
	{
		v1.GET("/summary", h.HandleSummary)
		v1.GET("/sessions", h.HandleSessions)
		v1.GET("/sessions/:nasIp/:sessionId", h.HandleSessionDetail)
		v1.POST("/reconcile", h.HandleReconcile)
		v1.POST("/flush", h.HandleFlush)
	}
}
