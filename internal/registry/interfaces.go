package registry

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=registry

import "context"

// SessionLifecycle はアカウンティングイベント3種の受け口を定義する
type SessionLifecycle interface {
	// OnStart はAcct-Start受信時の処理を行う
	OnStart(ctx context.Context, ev *AccountingEvent, traceID string) error
	// OnInterim はAcct-Interim-Update受信時の処理を行う
	OnInterim(ctx context.Context, ev *AccountingEvent, traceID string) error
	// OnStop はAcct-Stop受信時の処理を行う
	OnStop(ctx context.Context, ev *AccountingEvent, traceID string) error
}

// Querier はセッション照会の読み取り面を定義する
type Querier interface {
	// DashboardSummary はカウンターとNAS別内訳を返す
	DashboardSummary(ctx context.Context) (*Summary, error)
	// SessionsForUser は指定ユーザーのライブセッション一覧を返す
	SessionsForUser(ctx context.Context, username string) ([]*SessionRecord, error)
	// SessionsForNas は指定NASのライブセッション一覧を返す
	SessionsForNas(ctx context.Context, nasIP string) ([]*SessionRecord, error)
	// SessionDetail は単一セッションの詳細を返す（未存在時はErrSessionNotFound）
	SessionDetail(ctx context.Context, nasIP, sessionID string) (*SessionRecord, error)
}

// ReconcileRunner は一括整合性回復パスのトリガーを定義する
type ReconcileRunner interface {
	// Run はReconcilerを1回実行する（実行中の場合はErrReconcileInProgress）
	Run(ctx context.Context) (*RunReport, error)
}

// Flusher はレジストリ状態の全消去を定義する
type Flusher interface {
	// Flush はレジストリの全状態を削除する
	Flush(ctx context.Context) error
}
