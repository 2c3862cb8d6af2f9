package registry

// AccountingEvent はNASから受信した1件のアカウンティングイベントを表す。
// 上流トランスポートはat-least-once・順序入れ替わりありの配送を行うため、
// 受信側の全処理は冪等であることが前提となる。
type AccountingEvent struct {
	NasIP            string // NAS IPアドレス
	SessionID        string // Acct-Session-Id
	Username         string // 加入者ユーザー名
	FramedIP         string // 払い出しクライアントIP
	CallingStationID string // クライアント機器識別子（MAC等）
	SessionTime      int64  // セッション経過秒数
	InputOctets      int64  // 累積受信バイト数
	OutputOctets     int64  // 累積送信バイト数
	InterimInterval  int    // Interim間隔（秒）。0なら設定デフォルトを使用
}

// SessionRecord はライブセッション1件を表す。
// Valkeyキー: session:{nasIp}:{sessionId}
// TTL: Interim間隔 × 設定倍率
type SessionRecord struct {
	Username       string `redis:"username" json:"username"`
	NasIP          string `redis:"nas_ip" json:"nas_ip"`
	SessionID      string `redis:"session_id" json:"session_id"`
	ClientIP       string `redis:"client_ip" json:"client_ip"`
	CallingStation string `redis:"calling_station" json:"calling_station"`
	SessionTime    int64  `redis:"session_time" json:"session_time"`
	InputOctets    int64  `redis:"input_octets" json:"input_octets"`
	OutputOctets   int64  `redis:"output_octets" json:"output_octets"`
	LastEvent      string `redis:"last_event" json:"last_event"`
	UpdatedAt      int64  `redis:"updated_at" json:"updated_at"`
}

// NasSummary はNAS単位のセッション数を表す。
type NasSummary struct {
	NasIP        string `json:"nas_ip"`
	SessionCount int64  `json:"session_count"`
}

// Summary はダッシュボード向けの集計結果を表す。
// カウンター部はO(1)で読み出され、PerNasはNAS数に比例する。
type Summary struct {
	OnlineUsers    int64        `json:"online_users"`
	ActiveSessions int64        `json:"active_sessions"`
	PerNas         []NasSummary `json:"per_nas"`
}

// RunReport はReconciler 1回分の実行結果を表す。
type RunReport struct {
	PrunedUserRefs int64 `json:"pruned_user_refs"` // ユーザーインデックスから削除した失効参照数
	PrunedNasRefs  int64 `json:"pruned_nas_refs"`  // NASインデックスから削除した失効参照数
	RemovedUsers   int64 `json:"removed_users"`    // オンラインセットから除外したユーザー数
	ActiveSessions int64 `json:"active_sessions"`  // 再計算後のライブセッション数
	OnlineUsers    int64 `json:"online_users"`     // 再計算後のオンラインユーザー数
	ElapsedMs      int64 `json:"elapsed_ms"`
}

// Counter は集計カウンターの種別。
type Counter int

const (
	// CounterSessions はライブセッション数カウンター
	CounterSessions Counter = iota
	// CounterUsers はオンラインユーザー数カウンター
	CounterUsers
)

// イベント種別（last_eventフィールドに記録される値）
const (
	eventStart   = "Start"
	eventInterim = "Interim-Update"
)
