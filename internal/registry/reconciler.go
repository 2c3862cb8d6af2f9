package registry

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/metrics"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

// Reconciler はインデックスとカウンターの整合性を一括回復する。
// 遅延クリーンアップが取りこぼしたドリフト（NASサイレント消滅、
// 部分書き込み失敗など）を定期的または手動トリガーで吸収する。
// 実行中の多重起動は許可しない。稼働系への影響を抑えるため、
// 全走査はカーソルベースのバッチで行い、キースペース全体を
// 一度にメモリへ載せることはない。
type Reconciler struct {
	index      store.IndexStore
	scan       store.ScanStore
	ledger     *CounterLedger
	maintainer *IndexMaintainer
	running    atomic.Bool
}

// NewReconciler は新しいReconcilerを生成する。
func NewReconciler(is store.IndexStore, sc store.ScanStore, ledger *CounterLedger, im *IndexMaintainer) *Reconciler {
	return &Reconciler{
		index:      is,
		scan:       sc,
		ledger:     ledger,
		maintainer: im,
	}
}

// Run はReconcilerを1回実行する。
// 既に実行中の場合はErrReconcileInProgressを返す（待機しない）。
func (r *Reconciler) Run(ctx context.Context) (*RunReport, error) {
	if !r.running.CompareAndSwap(false, true) {
		metrics.ReconcileRuns.WithLabelValues(metrics.ResultSkipped).Inc()
		return nil, ErrReconcileInProgress
	}
	defer r.running.Store(false)

	start := time.Now()
	report := &RunReport{}

	slog.Info("reconcile started", "event_id", "RECONCILE_START")

	if err := r.pruneUserIndexes(ctx, report); err != nil {
		return r.failed(err)
	}
	if err := r.pruneNasIndexes(ctx, report); err != nil {
		return r.failed(err)
	}
	if err := r.pruneOnlineUsers(ctx, report); err != nil {
		return r.failed(err)
	}
	if err := r.recalibrate(ctx, report); err != nil {
		return r.failed(err)
	}

	report.ElapsedMs = time.Since(start).Milliseconds()
	metrics.ReconcileRuns.WithLabelValues(metrics.ResultOK).Inc()

	slog.Info("reconcile finished",
		"event_id", "RECONCILE_DONE",
		"pruned_user_refs", report.PrunedUserRefs,
		"pruned_nas_refs", report.PrunedNasRefs,
		"removed_users", report.RemovedUsers,
		"active_sessions", report.ActiveSessions,
		"online_users", report.OnlineUsers,
		"latency_ms", report.ElapsedMs,
	)
	return report, nil
}

func (r *Reconciler) failed(err error) (*RunReport, error) {
	metrics.ReconcileRuns.WithLabelValues(metrics.ResultError).Inc()
	slog.Error("reconcile aborted",
		"event_id", "RECONCILE_ERR",
		"error", err.Error(),
	)
	return nil, err
}

// pruneUserIndexes は全ユーザーインデックスを走査し、
// TTL失効済みレコードへの参照を削除する。
func (r *Reconciler) pruneUserIndexes(ctx context.Context, report *RunReport) error {
	return r.scan.ScanKeys(ctx, store.KeyPrefixUserIdx+"*", func(idxKeys []string) error {
		for _, idxKey := range idxKeys {
			username := strings.TrimPrefix(idxKey, store.KeyPrefixUserIdx)

			err := r.scan.ScanSetMembers(ctx, idxKey, func(members []string) error {
				alive, err := r.scan.ExistsPipelined(ctx, members)
				if err != nil {
					return err
				}
				for i, member := range members {
					if alive[i] {
						continue
					}
					nasIP, _, _ := store.SplitSessionKey(member)
					userOffline, err := r.maintainer.PruneStale(ctx, member, username, nasIP)
					if err != nil {
						return err
					}
					report.PrunedUserRefs++
					if userOffline {
						report.RemovedUsers++
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// pruneNasIndexes は全NASインデックスを走査し、失効参照を削除する。
// ユーザーインデックス側は既にpruneUserIndexesが処理済みのため、
// ここではNASセットからの除去のみを行う。
func (r *Reconciler) pruneNasIndexes(ctx context.Context, report *RunReport) error {
	return r.scan.ScanKeys(ctx, store.KeyPrefixNasIdx+"*", func(idxKeys []string) error {
		for _, idxKey := range idxKeys {
			nasIP := strings.TrimPrefix(idxKey, store.KeyPrefixNasIdx)

			err := r.scan.ScanSetMembers(ctx, idxKey, func(members []string) error {
				alive, err := r.scan.ExistsPipelined(ctx, members)
				if err != nil {
					return err
				}
				for i, member := range members {
					if alive[i] {
						continue
					}
					if err := r.maintainer.PruneStaleNasRef(ctx, member, nasIP); err != nil {
						return err
					}
					report.PrunedNasRefs++
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// pruneOnlineUsers はオンラインユーザーセットを突き合わせ、
// セッションを1つも持たないユーザーを除外する。
func (r *Reconciler) pruneOnlineUsers(ctx context.Context, report *RunReport) error {
	return r.scan.ScanSetMembers(ctx, store.KeyOnlineUsers, func(usernames []string) error {
		for _, username := range usernames {
			size, err := r.index.UserIndexSize(ctx, username)
			if err != nil {
				return err
			}
			if size > 0 {
				continue
			}
			removed, err := r.index.RemoveOnlineUser(ctx, username)
			if err != nil {
				return err
			}
			if removed {
				report.RemovedUsers++
			}
		}
		return nil
	})
}

// recalibrate はライブレコードの実数からカウンターを再計算して上書きする。
// インクリメント/デクリメントの取りこぼしによるドリフトはここで収束する。
func (r *Reconciler) recalibrate(ctx context.Context, report *RunReport) error {
	sessionCount, err := r.scan.CountKeys(ctx, store.KeyPrefixSession+"*")
	if err != nil {
		return err
	}
	if err := r.ledger.Recalibrate(ctx, CounterSessions, sessionCount); err != nil {
		return err
	}

	userCount, err := r.index.OnlineUserCount(ctx)
	if err != nil {
		return err
	}
	if err := r.ledger.Recalibrate(ctx, CounterUsers, userCount); err != nil {
		return err
	}

	report.ActiveSessions = sessionCount
	report.OnlineUsers = userCount
	return nil
}
