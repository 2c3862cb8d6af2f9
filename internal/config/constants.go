package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMaxRetries     = 3
	ValkeyMinRetryDelay  = 100 * time.Millisecond
	ValkeyMaxRetryDelay  = 1 * time.Second
)

// SCAN走査設定
// 1回のカーソル前進で取得するキー数の上限。ストア全体を
// ブロックする無制限リストを避けるため、必ずバッチで走査する
const (
	ScanBatchSize = 100
)

// Query Service用サーキットブレーカー設定
const (
	CBName             = "registry-store"
	CBMaxRequests      = 1
	CBInterval         = 60 * time.Second
	CBTimeout          = 10 * time.Second
	CBFailureThreshold = 5
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)
