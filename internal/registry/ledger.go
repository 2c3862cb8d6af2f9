package registry

import (
	"context"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

// CounterLedger は2つの集計カウンターを単一キーのアトミック操作で管理する。
// インデックスやレコードを読まずにO(1)でダッシュボード値を返すための構造で、
// 並行ライター由来のドリフトはRecalibrate（Reconciler専用）で補正される。
type CounterLedger struct {
	counters store.CounterStore
}

// NewCounterLedger は新しいCounterLedgerを生成する。
func NewCounterLedger(cs store.CounterStore) *CounterLedger {
	return &CounterLedger{counters: cs}
}

func counterKey(c Counter) string {
	if c == CounterUsers {
		return store.KeyCountUsers
	}
	return store.KeyCountSessions
}

// Increment は指定カウンターをアトミックに+1する。
func (l *CounterLedger) Increment(ctx context.Context, c Counter) error {
	return l.counters.Increment(ctx, counterKey(c))
}

// Decrement は指定カウンターをアトミックに-1する。
// 重複Stop等の異常順序で負値になり得るが、書き込み時にはクランプしない。
func (l *CounterLedger) Decrement(ctx context.Context, c Counter) error {
	return l.counters.Decrement(ctx, counterKey(c))
}

// Read は指定カウンターの値を返す。表示用に0未満は0へクランプする。
func (l *CounterLedger) Read(ctx context.Context, c Counter) (int64, error) {
	n, err := l.counters.Get(ctx, counterKey(c))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}

// Recalibrate は指定カウンターを実測値で上書きする。Reconciler専用。
func (l *CounterLedger) Recalibrate(ctx context.Context, c Counter, groundTruth int64) error {
	return l.counters.Set(ctx, counterKey(c), groundTruth)
}
