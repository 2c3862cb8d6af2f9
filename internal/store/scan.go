package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/config"
	"github.com/redis/go-redis/v9"
)

// scanStore はScanStoreインターフェースの実装。
// KEYSのような無制限リストは使わず、必ずSCAN/SSCANのカーソルを
// バッチサイズ分ずつ進める。各バッチの前にコンテキストを確認するため、
// 走査は任意のカーソル地点で中断・再開できる。
type scanStore struct {
	vc *ValkeyClient
}

// NewScanStore は新しいScanStoreを生成する。
func NewScanStore(vc *ValkeyClient) ScanStore {
	return &scanStore{vc: vc}
}

// ScanKeys はパターンに一致するキーをバッチごとにfnへ渡す。
func (s *scanStore) ScanKeys(ctx context.Context, pattern string, fn func(keys []string) error) error {
	var cursor uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		keys, next, err := s.vc.Client().Scan(ctx, cursor, pattern, config.ScanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if len(keys) > 0 {
			if err := fn(keys); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// CountKeys はパターンに一致するキー数をSCANで数える。
func (s *scanStore) CountKeys(ctx context.Context, pattern string) (int64, error) {
	var count int64
	err := s.ScanKeys(ctx, pattern, func(keys []string) error {
		count += int64(len(keys))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ScanSetMembers は指定セットのメンバーをバッチごとにfnへ渡す。
func (s *scanStore) ScanSetMembers(ctx context.Context, key string, fn func(members []string) error) error {
	var cursor uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		members, next, err := s.vc.Client().SScan(ctx, key, cursor, "", config.ScanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if len(members) > 0 {
			if err := fn(members); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// ExistsPipelined は複数キーの存在をパイプラインで一括確認する。
func (s *scanStore) ExistsPipelined(ctx context.Context, keys []string) ([]bool, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	pipe := s.vc.Client().Pipeline()
	cmds := make([]*redis.IntCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Exists(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	result := make([]bool, len(keys))
	for i, cmd := range cmds {
		n, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		result[i] = n > 0
	}
	return result, nil
}

// GetAllPipelined は複数ハッシュをパイプラインで一括取得する。
// 存在しないキーに対応する要素は空マップとなる。
func (s *scanStore) GetAllPipelined(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	pipe := s.vc.Client().Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.HGetAll(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	result := make([]map[string]string, len(keys))
	for i, cmd := range cmds {
		m, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		result[i] = m
	}
	return result, nil
}
