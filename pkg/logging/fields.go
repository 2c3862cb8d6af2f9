package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldSrcIP      = "src_ip"
	FieldNasIP      = "nas_ip"
	FieldUsername   = "username"
	FieldSessionID  = "acct_session_id"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithSrcIP はソースIPアドレスのslog.Attrを返す。
func WithSrcIP(ip string) slog.Attr {
	return slog.String(FieldSrcIP, ip)
}

// WithNasIP はNAS IPアドレスのslog.Attrを返す。
func WithNasIP(ip string) slog.Attr {
	return slog.String(FieldNasIP, ip)
}

// WithSessionID はAcct-Session-Idのslog.Attrを返す。
func WithSessionID(id string) slog.Attr {
	return slog.String(FieldSessionID, id)
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}
