package radius

import (
	"layeh.com/radius"
)

// BuildAccountingResponse はAccounting-Responseパケットを生成する（RFC 2866）。
// Proxy-Stateは受信順のままエコーバックする。
// Response Authenticatorはgo-radiusライブラリのEncode()が自動計算する。
func BuildAccountingResponse(request *radius.Packet, proxyStates [][]byte) *radius.Packet {
	response := request.Response(radius.CodeAccountingResponse)
	ApplyProxyStates(response, proxyStates)
	return response
}

// ApplyProxyStates はProxy-State属性を応答パケットに追加する（順序維持）。
func ApplyProxyStates(packet *radius.Packet, states [][]byte) {
	for _, state := range states {
		packet.Add(radius.Type(AttrTypeProxyState), state)
	}
}
