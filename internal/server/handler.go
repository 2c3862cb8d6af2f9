package server

import (
	"context"
	"log/slog"
	"net"

	"github.com/google/uuid"
	"layeh.com/radius"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/metrics"
	radiuspkg "github.com/Ali-Mohammed/openRadius-sub014/internal/radius"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/registry"
)

// Handler はRADIUSリクエストを処理するハンドラ。
// 受理したAccounting-Requestはレジストリのライフサイクル処理に引き渡し、
// 処理結果に関わらずAccounting-Responseを返す（NASの再送抑止を優先）。
type Handler struct {
	lifecycle registry.SessionLifecycle
}

// NewHandler は新しいHandlerを生成する
func NewHandler(lifecycle registry.SessionLifecycle) *Handler {
	return &Handler{lifecycle: lifecycle}
}

// ServeRADIUS はRADIUSリクエストを処理する
func (h *Handler) ServeRADIUS(w radius.ResponseWriter, r *radius.Request) {
	traceID := uuid.New().String()
	srcIP := extractIP(r.RemoteAddr)

	switch r.Code {
	case radius.CodeAccountingRequest:
		h.handleAccountingRequest(w, r, traceID, srcIP)

	case radius.CodeStatusServer:
		h.handleStatusServer(w, r, traceID, srcIP)

	default:
		metrics.PacketsDropped.WithLabelValues("unknown_code").Inc()
		slog.Warn("unsupported radius code",
			"event_id", "RADIUS_UNKNOWN_CODE",
			"trace_id", traceID,
			"src_ip", srcIP,
			"code", r.Code,
		)
	}
}

// handleAccountingRequest はAccounting-Requestを処理する
func (h *Handler) handleAccountingRequest(w radius.ResponseWriter, r *radius.Request, traceID, srcIP string) {
	secret := r.Secret

	// 1. Request Authenticator検証
	if !radiuspkg.VerifyAccountingAuthenticator(r.Packet, secret) {
		metrics.PacketsDropped.WithLabelValues("bad_authenticator").Inc()
		slog.Warn("request authenticator mismatch",
			"event_id", "RADIUS_AUTH_ERR",
			"trace_id", traceID,
			"src_ip", srcIP,
		)
		return // パケット破棄
	}

	// 2. 属性抽出
	attrs, err := radiuspkg.ExtractAccountingAttributes(r.Packet)
	if err != nil {
		metrics.PacketsDropped.WithLabelValues("parse_error").Inc()
		slog.Warn("attribute extraction failed",
			"event_id", "RADIUS_PARSE_ERR",
			"trace_id", traceID,
			"src_ip", srcIP,
			"reason", err.Error(),
		)
		return // パケット破棄
	}

	ev := buildEvent(attrs, srcIP)

	// 3. Status-Type別処理
	ctx := context.Background()
	var procErr error
	switch attrs.AcctStatusType {
	case radiuspkg.AcctStatusTypeStart:
		metrics.AccountingEvents.WithLabelValues(metrics.EventStart).Inc()
		procErr = h.lifecycle.OnStart(ctx, ev, traceID)
	case radiuspkg.AcctStatusTypeStop:
		metrics.AccountingEvents.WithLabelValues(metrics.EventStop).Inc()
		procErr = h.lifecycle.OnStop(ctx, ev, traceID)
	case radiuspkg.AcctStatusTypeInterim:
		metrics.AccountingEvents.WithLabelValues(metrics.EventInterim).Inc()
		procErr = h.lifecycle.OnInterim(ctx, ev, traceID)
	default:
		metrics.PacketsDropped.WithLabelValues("unknown_status_type").Inc()
		slog.Warn("unsupported acct-status-type",
			"event_id", "RADIUS_UNKNOWN_CODE",
			"trace_id", traceID,
			"src_ip", srcIP,
			"acct_status_type", attrs.AcctStatusType,
		)
		return // パケット破棄
	}

	// 4. 処理エラーがあってもAccounting-Responseは返す
	if procErr != nil {
		slog.Error("lifecycle processing error",
			"event_id", "SYS_ERR",
			"trace_id", traceID,
			"error", procErr.Error(),
		)
	}

	// 5. Accounting-Response生成・送信（Proxy-Stateエコーバック込み）
	response := radiuspkg.BuildAccountingResponse(r.Packet, attrs.ProxyStates)
	if err := w.Write(response); err != nil {
		slog.Error("radius response send failed",
			"event_id", "PKT_SEND_ERR",
			"trace_id", traceID,
			"error", err,
		)
	}
}

// handleStatusServer はStatus-Serverリクエストに応答する
func (h *Handler) handleStatusServer(w radius.ResponseWriter, r *radius.Request, traceID, srcIP string) {
	resp := radiuspkg.HandleStatusServer(r.Packet, r.Secret, srcIP, traceID)
	if resp == nil {
		metrics.PacketsDropped.WithLabelValues("bad_authenticator").Inc()
		return
	}
	if err := w.Write(resp); err != nil {
		slog.Error("status-server response send failed",
			"event_id", "PKT_SEND_ERR",
			"trace_id", traceID,
			"error", err,
		)
	}
}

// buildEvent は抽出済み属性からアカウンティングイベントを組み立てる。
// NAS-IP-Address属性がないパケットは送信元IPをNAS識別子として使う。
func buildEvent(attrs *radiuspkg.AccountingAttributes, srcIP string) *registry.AccountingEvent {
	nasIP := attrs.NasIPAddress
	if nasIP == "" {
		nasIP = srcIP
	}
	return &registry.AccountingEvent{
		NasIP:            nasIP,
		SessionID:        attrs.AcctSessionID,
		Username:         attrs.UserName,
		FramedIP:         attrs.FramedIPAddress,
		CallingStationID: attrs.CallingStationID,
		SessionTime:      attrs.SessionTime,
		InputOctets:      attrs.InputOctets,
		OutputOctets:     attrs.OutputOctets,
		InterimInterval:  attrs.InterimInterval,
	}
}

// extractIP はnet.AddrからIPアドレス文字列を抽出する
func extractIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	if udpAddr, ok := addr.(*net.UDPAddr); ok {
		return udpAddr.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return ""
	}
	return host
}
