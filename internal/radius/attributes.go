package radius

import (
	"encoding/binary"
	"errors"
	"net"

	"layeh.com/radius"
)

// RADIUS属性タイプ定数（RFC 2865/2866/2869）
const (
	AttrTypeUserName           = 1
	AttrTypeNASIPAddress       = 4
	AttrTypeFramedIPAddr       = 8
	AttrTypeCallingStationID   = 31
	AttrTypeProxyState         = 33
	AttrTypeAcctStatusType     = 40
	AttrTypeAcctInputOct       = 42
	AttrTypeAcctOutputOct      = 43
	AttrTypeAcctSessionID      = 44
	AttrTypeAcctSessionTime    = 46
	AttrTypeAcctInputGigawords = 52
	AttrTypeAcctOutputGigaword = 53
	AttrTypeAcctInterimIntvl   = 85
)

// 属性抽出エラー
var (
	ErrMissingStatusType = errors.New("missing Acct-Status-Type")
	ErrMissingSessionID  = errors.New("missing Acct-Session-Id")
)

// ExtractAccountingAttributes はAccounting-Requestから必要な属性を抽出する。
// Acct-Status-TypeとAcct-Session-Id以外は全てオプション扱い。
func ExtractAccountingAttributes(packet *radius.Packet) (*AccountingAttributes, error) {
	attrs := &AccountingAttributes{}

	// Acct-Status-Type（必須）
	statusTypeAttr := packet.Get(radius.Type(AttrTypeAcctStatusType))
	if len(statusTypeAttr) < 4 {
		return nil, ErrMissingStatusType
	}
	attrs.AcctStatusType = binary.BigEndian.Uint32(statusTypeAttr)

	// Acct-Session-Id（必須）
	sessionIDAttr := packet.Get(radius.Type(AttrTypeAcctSessionID))
	if len(sessionIDAttr) == 0 {
		return nil, ErrMissingSessionID
	}
	attrs.AcctSessionID = string(sessionIDAttr)

	// User-Name（オプション）
	userNameAttr := packet.Get(radius.Type(AttrTypeUserName))
	if len(userNameAttr) > 0 {
		attrs.UserName = string(userNameAttr)
	}

	// NAS-IP-Address
	nasIPAttr := packet.Get(radius.Type(AttrTypeNASIPAddress))
	if len(nasIPAttr) == 4 {
		attrs.NasIPAddress = net.IP(nasIPAttr).String()
	}

	// Framed-IP-Address
	framedIPAttr := packet.Get(radius.Type(AttrTypeFramedIPAddr))
	if len(framedIPAttr) == 4 {
		attrs.FramedIPAddress = net.IP(framedIPAttr).String()
	}

	// Calling-Station-Id
	callingAttr := packet.Get(radius.Type(AttrTypeCallingStationID))
	if len(callingAttr) > 0 {
		attrs.CallingStationID = string(callingAttr)
	}

	// Acct-Input/Output-Octets + Gigawords（RFC 2869）で64bit値を復元する
	attrs.InputOctets = combineOctets(
		getUint32(packet, AttrTypeAcctInputOct),
		getUint32(packet, AttrTypeAcctInputGigawords),
	)
	attrs.OutputOctets = combineOctets(
		getUint32(packet, AttrTypeAcctOutputOct),
		getUint32(packet, AttrTypeAcctOutputGigaword),
	)

	// Acct-Session-Time
	attrs.SessionTime = int64(getUint32(packet, AttrTypeAcctSessionTime))

	// Acct-Interim-Interval
	attrs.InterimInterval = int(getUint32(packet, AttrTypeAcctInterimIntvl))

	// Proxy-State（複数可）
	attrs.ProxyStates = extractProxyStatesRaw(packet)

	return attrs, nil
}

// getUint32 は4バイト整数属性を取得する（未存在・不正長は0）。
func getUint32(packet *radius.Packet, attrType int) uint32 {
	attr := packet.Get(radius.Type(attrType))
	if len(attr) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(attr)
}

// combineOctets はOctets属性とGigawords属性から64bitバイト数を合成する。
func combineOctets(octets, gigawords uint32) int64 {
	return int64(gigawords)<<32 | int64(octets)
}

// extractProxyStatesRaw はパケットからProxy-State属性を直接抽出する
func extractProxyStatesRaw(packet *radius.Packet) [][]byte {
	var states [][]byte
	for _, attr := range packet.Attributes {
		if attr.Type == radius.Type(AttrTypeProxyState) {
			states = append(states, attr.Attribute)
		}
	}
	return states
}
