package store

import (
	"context"
	"fmt"
	"time"
)

// sessionStore はSessionStoreインターフェースの実装。
type sessionStore struct {
	vc *ValkeyClient
}

// NewSessionStore は新しいSessionStoreを生成する。
func NewSessionStore(vc *ValkeyClient) SessionStore {
	return &sessionStore{vc: vc}
}

// Exists はセッションレコードの存在を確認する。
func (s *sessionStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.vc.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

// Get はセッションレコードを取得する。
func (s *sessionStore) Get(ctx context.Context, key string) (map[string]string, error) {
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(m) == 0 {
		return nil, ErrKeyNotFound
	}
	return m, nil
}

// Upsert はレコードのフィールドを書き込み、TTLを更新する。
// HSetとEXPIREはパイプラインでまとめて発行する。
func (s *sessionStore) Upsert(ctx context.Context, key string, fields map[string]any, ttl time.Duration) error {
	pipe := s.vc.Client().Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete はセッションレコードを削除する。
// 存在しないキーの削除はno-op（false, nil）となる。
func (s *sessionStore) Delete(ctx context.Context, key string) (bool, error) {
	n, err := s.vc.Client().Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}
