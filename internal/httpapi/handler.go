package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/registry"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
	"github.com/Ali-Mohammed/openRadius-sub014/pkg/httputil"
)

// RegistryHandler はセッションレジストリAPIのハンドラー。
type RegistryHandler struct {
	querier    registry.Querier
	reconciler registry.ReconcileRunner
	flusher    registry.Flusher
}

// NewRegistryHandler は新しいRegistryHandlerを生成する。
func NewRegistryHandler(q registry.Querier, r registry.ReconcileRunner, f registry.Flusher) *RegistryHandler {
	return &RegistryHandler{
		querier:    q,
		reconciler: r,
		flusher:    f,
	}
}

// HandleHealth はGET /health のハンドラー。
func (h *RegistryHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleSummary はGET /api/v1/summary のハンドラー。
func (h *RegistryHandler) HandleSummary(c *gin.Context) {
	summary, err := h.querier.DashboardSummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// HandleSessions はGET /api/v1/sessions のハンドラー。
// user または nas クエリパラメータのどちらか一方を必須とする。
func (h *RegistryHandler) HandleSessions(c *gin.Context) {
	user := c.Query("user")
	nas := c.Query("nas")

	switch {
	case user != "" && nas != "":
		httputil.WriteError(c, httputil.BadRequest("Specify either user or nas, not both"))
		return
	case user != "":
		records, err := h.querier.SessionsForUser(c.Request.Context(), user)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": records})
	case nas != "":
		records, err := h.querier.SessionsForNas(c.Request.Context(), nas)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": records})
	default:
		httputil.WriteError(c, httputil.BadRequest("Query parameter user or nas is required"))
	}
}

// HandleSessionDetail はGET /api/v1/sessions/:nasIp/:sessionId のハンドラー。
func (h *RegistryHandler) HandleSessionDetail(c *gin.Context) {
	nasIP := c.Param("nasIp")
	sessionID := c.Param("sessionId")

	record, err := h.querier.SessionDetail(c.Request.Context(), nasIP, sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// HandleReconcile はPOST /api/v1/reconcile のハンドラー。
// 実行結果レポートを同期で返す。既に実行中の場合は409を返す。
func (h *RegistryHandler) HandleReconcile(c *gin.Context) {
	report, err := h.reconciler.Run(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// HandleFlush はPOST /api/v1/flush のハンドラー。
// 誤操作防止のため confirm=true クエリパラメータを必須とする。
func (h *RegistryHandler) HandleFlush(c *gin.Context) {
	if c.Query("confirm") != "true" {
		httputil.WriteError(c, httputil.BadRequest("Query parameter confirm=true is required"))
		return
	}

	if err := h.flusher.Flush(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "flushed"})
}

// handleError はドメインエラーをHTTPステータスに対応付ける。
func (h *RegistryHandler) handleError(c *gin.Context, err error) {
	traceID, _ := c.Get(TraceIDKey)

	switch {
	case errors.Is(err, store.ErrStoreUnavailable):
		slog.Error("store unavailable",
			"event_id", "VALKEY_CONN_ERR",
			"trace_id", traceID,
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.ServiceUnavailable("Session store is unavailable"))

	case errors.Is(err, registry.ErrSessionNotFound):
		httputil.WriteError(c, httputil.NotFound("Session not found"))

	case errors.Is(err, registry.ErrReconcileInProgress):
		httputil.WriteError(c, httputil.Conflict("Reconciliation is already running"))

	default:
		slog.Error("unexpected error",
			"event_id", "SYS_ERR",
			"trace_id", traceID,
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.InternalServerError("An unexpected error occurred"))
	}
}
