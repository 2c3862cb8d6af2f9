package registry

import (
	"context"
	"log/slog"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

// FlushService はレジストリ状態の全消去を行う。
// 障害復旧やテスト環境のリセット用で、通常運用では使用しない。
type FlushService struct {
	flusher store.Flusher
}

// NewFlushService は新しいFlushServiceを生成する。
func NewFlushService(f store.Flusher) *FlushService {
	return &FlushService{flusher: f}
}

// Flush はレジストリ論理DBの全キーを削除する。
// 削除後の状態は空のレジストリと等価で、以後のイベントは通常どおり処理される。
func (s *FlushService) Flush(ctx context.Context) error {
	if err := s.flusher.Flush(ctx); err != nil {
		return err
	}
	slog.Warn("registry state flushed", "event_id", "REGISTRY_FLUSH")
	return nil
}
