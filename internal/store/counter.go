package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// counterStore はCounterStoreインターフェースの実装。
// INCR/DECR/GET/SETの単一コマンドのみを使用し、トランザクションもロックも取らない。
// 並行ライター下でのドリフトはReconcilerが補正する前提の設計。
type counterStore struct {
	vc *ValkeyClient
}

// NewCounterStore は新しいCounterStoreを生成する。
func NewCounterStore(vc *ValkeyClient) CounterStore {
	return &counterStore{vc: vc}
}

// Increment は指定キーをアトミックに+1する。
func (s *counterStore) Increment(ctx context.Context, key string) error {
	if err := s.vc.Client().Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Decrement は指定キーをアトミックに-1する。
// 負値になってもクランプしない。補正はReconcilerの責務
func (s *counterStore) Decrement(ctx context.Context, key string) error {
	if err := s.vc.Client().Decr(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Get は指定キーの整数値を返す。未存在時は0。
func (s *counterStore) Get(ctx context.Context, key string) (int64, error) {
	n, err := s.vc.Client().Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n, nil
}

// Set は指定キーの値を上書きする。
func (s *counterStore) Set(ctx context.Context, key string, value int64) error {
	if err := s.vc.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
