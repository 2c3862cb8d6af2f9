package store

import (
	"context"
	"fmt"
)

// flushStore はFlusherインターフェースの実装。
// レジストリのキーは専用論理DBに隔離されているため、FLUSHDBで
// レジストリ状態のみを安全に全消去できる。
type flushStore struct {
	vc *ValkeyClient
}

// NewFlushStore は新しいFlusherを生成する。
func NewFlushStore(vc *ValkeyClient) Flusher {
	return &flushStore{vc: vc}
}

// Flush はレジストリ論理DBの全キーを削除する。
func (s *flushStore) Flush(ctx context.Context) error {
	if err := s.vc.Client().FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
