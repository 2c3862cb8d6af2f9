package registry

import (
	"context"
	"errors"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/metrics"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

// IndexMaintainer はライフサイクル遷移の副作用としてインデックスセットと
// カウンターを一貫させる。全操作は冪等で、同一引数での再実行は安全なno-op。
// カウンター増減はSAdd/SRemが実際に状態を変えたときだけ行うため、
// 重複イベントがドリフトを生まない。
type IndexMaintainer struct {
	indexes store.IndexStore
	ledger  *CounterLedger
}

// NewIndexMaintainer は新しいIndexMaintainerを生成する。
func NewIndexMaintainer(is store.IndexStore, ledger *CounterLedger) *IndexMaintainer {
	return &IndexMaintainer{indexes: is, ledger: ledger}
}

// SessionAdded はセッション追加時のインデックス更新を行う。
// ユーザーインデックスへの新規追加でセッション数を、オンラインセットへの
// 新規追加でユーザー数をインクリメントする。
func (m *IndexMaintainer) SessionAdded(ctx context.Context, key, username, nasIP string) error {
	var errs []error

	added, err := m.indexes.AddToUserIndex(ctx, username, key)
	if err != nil {
		errs = append(errs, err)
	} else if added {
		if err := m.ledger.Increment(ctx, CounterSessions); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := m.indexes.AddToNasIndex(ctx, nasIP, key); err != nil {
		errs = append(errs, err)
	}

	newUser, err := m.indexes.AddOnlineUser(ctx, username)
	if err != nil {
		errs = append(errs, err)
	} else if newUser {
		if err := m.ledger.Increment(ctx, CounterUsers); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SessionRemoved はセッション削除時のインデックス更新を行う。
// ユーザーインデックスが空になった場合はセット自体を削除し、
// ユーザーをオンラインセットから外す。ユーザーがオフラインに
// なったかどうかを返す。
func (m *IndexMaintainer) SessionRemoved(ctx context.Context, key, username, nasIP string) (bool, error) {
	var errs []error

	removed, err := m.indexes.RemoveFromUserIndex(ctx, username, key)
	if err != nil {
		errs = append(errs, err)
	} else if removed {
		if err := m.ledger.Decrement(ctx, CounterSessions); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := m.indexes.RemoveFromNasIndex(ctx, nasIP, key); err != nil {
		errs = append(errs, err)
	}

	userOffline := false
	size, err := m.indexes.UserIndexSize(ctx, username)
	if err != nil {
		errs = append(errs, err)
	} else if size == 0 {
		if err := m.indexes.DeleteUserIndex(ctx, username); err != nil {
			errs = append(errs, err)
		}
		wasOnline, err := m.indexes.RemoveOnlineUser(ctx, username)
		if err != nil {
			errs = append(errs, err)
		} else if wasOnline {
			userOffline = true
			if err := m.ledger.Decrement(ctx, CounterUsers); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return userOffline, errors.Join(errs...)
}

// PruneStale はTTL失効後も残った失効参照を削除する。
// Stopパケット喪失時の自己修復パスで、削除処理自体はSessionRemovedと同一。
func (m *IndexMaintainer) PruneStale(ctx context.Context, key, username, nasIP string) (bool, error) {
	metrics.StaleRefsPruned.WithLabelValues(metrics.IndexUser).Inc()
	return m.SessionRemoved(ctx, key, username, nasIP)
}

// PruneStaleNasRef はNASインデックスのみから失効参照を削除する。
// レコードが消えた後のNAS視点ではユーザー名を復元できないため、
// ユーザー側の状態はユーザー照会パスかReconcilerが回収する。
func (m *IndexMaintainer) PruneStaleNasRef(ctx context.Context, key, nasIP string) error {
	metrics.StaleRefsPruned.WithLabelValues(metrics.IndexNas).Inc()
	_, err := m.indexes.RemoveFromNasIndex(ctx, nasIP, key)
	return err
}
