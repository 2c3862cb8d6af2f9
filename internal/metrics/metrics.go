// Package metrics はレジストリのPrometheusメトリクスを提供する。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AccountingEvents は受信したアカウンティングイベント数（種別ラベル付き）
	AccountingEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_accounting_events_total",
		Help: "Total accounting events processed, by status type.",
	}, []string{"type"})

	// PacketsDropped は破棄したRADIUSパケット数（理由ラベル付き）
	PacketsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_radius_packets_dropped_total",
		Help: "Total RADIUS packets dropped before processing, by reason.",
	}, []string{"reason"})

	// StaleRefsPruned は削除した失効インデックス参照数（インデックス種別ラベル付き）
	StaleRefsPruned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_stale_refs_pruned_total",
		Help: "Total stale index references pruned, by index kind.",
	}, []string{"index"})

	// ReconcileRuns はReconciler実行回数（結果ラベル付き）
	ReconcileRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_reconcile_runs_total",
		Help: "Total reconciliation passes, by result.",
	}, []string{"result"})
)

// ラベル値の定数
const (
	EventStart   = "start"
	EventInterim = "interim"
	EventStop    = "stop"

	IndexUser = "user"
	IndexNas  = "nas"

	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)
