package radius

import (
	"log/slog"

	"layeh.com/radius"
)

// HandleStatusServer はStatus-Server(Code=12)を処理し、Accounting-Response(Code=5)を返す。
// RFC 5997準拠のヘルスチェック応答。
// Message-Authenticator検証失敗時はnilを返す（応答なし）。
func HandleStatusServer(request *radius.Packet, secret []byte, srcIP, traceID string) *radius.Packet {
	if !VerifyMessageAuthenticator(request, secret) {
		slog.Warn("status-server message-authenticator mismatch",
			"event_id", "RADIUS_AUTH_ERR",
			"trace_id", traceID,
			"src_ip", srcIP,
		)
		return nil
	}

	resp := request.Response(radius.CodeAccountingResponse)
	ApplyProxyStates(resp, extractProxyStatesRaw(request))
	SetMessageAuthenticator(resp, secret, request.Authenticator)

	slog.Info("status-server probe answered",
		"event_id", "PKT_RECV",
		"trace_id", traceID,
		"src_ip", srcIP,
	)

	return resp
}
