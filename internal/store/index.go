package store

import (
	"context"
	"fmt"
)

// indexStore はIndexStoreインターフェースの実装。
// SAdd/SRemの返り値（実際に追加・削除された要素数）をそのまま返すことで、
// 呼び出し側が重複操作を正確なno-opとして扱えるようにする。
type indexStore struct {
	vc *ValkeyClient
}

// NewIndexStore は新しいIndexStoreを生成する。
func NewIndexStore(vc *ValkeyClient) IndexStore {
	return &indexStore{vc: vc}
}

func (s *indexStore) sadd(ctx context.Context, key, member string) (bool, error) {
	n, err := s.vc.Client().SAdd(ctx, key, member).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

func (s *indexStore) srem(ctx context.Context, key, member string) (bool, error) {
	n, err := s.vc.Client().SRem(ctx, key, member).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

// AddToUserIndex はユーザーインデックスにセッションキーを追加する。
func (s *indexStore) AddToUserIndex(ctx context.Context, username, key string) (bool, error) {
	return s.sadd(ctx, UserIndexKey(username), key)
}

// RemoveFromUserIndex はユーザーインデックスからセッションキーを削除する。
func (s *indexStore) RemoveFromUserIndex(ctx context.Context, username, key string) (bool, error) {
	return s.srem(ctx, UserIndexKey(username), key)
}

// AddToNasIndex はNASインデックスにセッションキーを追加する。
func (s *indexStore) AddToNasIndex(ctx context.Context, nasIP, key string) (bool, error) {
	return s.sadd(ctx, NasIndexKey(nasIP), key)
}

// RemoveFromNasIndex はNASインデックスからセッションキーを削除する。
func (s *indexStore) RemoveFromNasIndex(ctx context.Context, nasIP, key string) (bool, error) {
	return s.srem(ctx, NasIndexKey(nasIP), key)
}

// UserIndexMembers はユーザーインデックスの全メンバーを返す。
func (s *indexStore) UserIndexMembers(ctx context.Context, username string) ([]string, error) {
	members, err := s.vc.Client().SMembers(ctx, UserIndexKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return members, nil
}

// NasIndexMembers はNASインデックスの全メンバーを返す。
func (s *indexStore) NasIndexMembers(ctx context.Context, nasIP string) ([]string, error) {
	members, err := s.vc.Client().SMembers(ctx, NasIndexKey(nasIP)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return members, nil
}

// UserIndexSize はユーザーインデックスの要素数を返す。
func (s *indexStore) UserIndexSize(ctx context.Context, username string) (int64, error) {
	n, err := s.vc.Client().SCard(ctx, UserIndexKey(username)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n, nil
}

// NasIndexSize はNASインデックスの要素数を返す。
func (s *indexStore) NasIndexSize(ctx context.Context, nasIP string) (int64, error) {
	n, err := s.vc.Client().SCard(ctx, NasIndexKey(nasIP)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n, nil
}

// DeleteUserIndex は空になったユーザーインデックスを削除する。
func (s *indexStore) DeleteUserIndex(ctx context.Context, username string) error {
	if err := s.vc.Client().Del(ctx, UserIndexKey(username)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// AddOnlineUser はオンラインユーザーセットにユーザー名を追加する。
func (s *indexStore) AddOnlineUser(ctx context.Context, username string) (bool, error) {
	return s.sadd(ctx, KeyOnlineUsers, username)
}

// RemoveOnlineUser はオンラインユーザーセットからユーザー名を削除する。
func (s *indexStore) RemoveOnlineUser(ctx context.Context, username string) (bool, error) {
	return s.srem(ctx, KeyOnlineUsers, username)
}

// OnlineUserCount はオンラインユーザーセットの要素数を返す。
func (s *indexStore) OnlineUserCount(ctx context.Context) (int64, error) {
	n, err := s.vc.Client().SCard(ctx, KeyOnlineUsers).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n, nil
}
