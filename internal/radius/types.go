package radius

// AccountingAttributes はAccounting-Requestから抽出された属性を表す
type AccountingAttributes struct {
	AcctStatusType   uint32   // Acct-Status-Type（1:Start, 2:Stop, 3:Interim）
	AcctSessionID    string   // Acct-Session-Id（必須）
	UserName         string   // User-Name（オプション）
	NasIPAddress     string   // NAS-IP-Address
	FramedIPAddress  string   // Framed-IP-Address
	CallingStationID string   // Calling-Station-Id（クライアント機器識別子）
	InputOctets      int64    // Acct-Input-Octets（Gigawords込みの64bit値）
	OutputOctets     int64    // Acct-Output-Octets（Gigawords込みの64bit値）
	SessionTime      int64    // Acct-Session-Time
	InterimInterval  int      // Acct-Interim-Interval（秒、0なら未指定）
	ProxyStates      [][]byte // Proxy-State属性（複数可）
}

// Acct-Status-Type値（RFC 2866）
const (
	AcctStatusTypeStart   uint32 = 1
	AcctStatusTypeStop    uint32 = 2
	AcctStatusTypeInterim uint32 = 3
)
