package store

import (
	"context"
	"time"
)

// SessionStore はセッションレコードへのアクセスを定義する
type SessionStore interface {
	// Exists はセッションレコードの存在を確認する
	Exists(ctx context.Context, key string) (bool, error)
	// Get はセッションレコードを取得する（未存在時はErrKeyNotFound）
	Get(ctx context.Context, key string) (map[string]string, error)
	// Upsert はレコードのフィールドを書き込み、TTLを更新する
	Upsert(ctx context.Context, key string, fields map[string]any, ttl time.Duration) error
	// Delete はセッションレコードを削除する（削除されたかどうかを返す）
	Delete(ctx context.Context, key string) (bool, error)
}

// IndexStore はインデックスセットへのアクセスを定義する
type IndexStore interface {
	// AddToUserIndex はユーザーインデックスにキーを追加する（新規追加ならtrue）
	AddToUserIndex(ctx context.Context, username, key string) (bool, error)
	// RemoveFromUserIndex はユーザーインデックスからキーを削除する（削除されたならtrue）
	RemoveFromUserIndex(ctx context.Context, username, key string) (bool, error)
	// AddToNasIndex はNASインデックスにキーを追加する（新規追加ならtrue）
	AddToNasIndex(ctx context.Context, nasIP, key string) (bool, error)
	// RemoveFromNasIndex はNASインデックスからキーを削除する（削除されたならtrue）
	RemoveFromNasIndex(ctx context.Context, nasIP, key string) (bool, error)
	// UserIndexMembers はユーザーインデックスの全メンバーを返す
	UserIndexMembers(ctx context.Context, username string) ([]string, error)
	// NasIndexMembers はNASインデックスの全メンバーを返す
	NasIndexMembers(ctx context.Context, nasIP string) ([]string, error)
	// UserIndexSize はユーザーインデックスの要素数を返す
	UserIndexSize(ctx context.Context, username string) (int64, error)
	// NasIndexSize はNASインデックスの要素数を返す
	NasIndexSize(ctx context.Context, nasIP string) (int64, error)
	// DeleteUserIndex はユーザーインデックスを削除する
	DeleteUserIndex(ctx context.Context, username string) error
	// AddOnlineUser はオンラインユーザーセットに追加する（新規追加ならtrue）
	AddOnlineUser(ctx context.Context, username string) (bool, error)
	// RemoveOnlineUser はオンラインユーザーセットから削除する（削除されたならtrue）
	RemoveOnlineUser(ctx context.Context, username string) (bool, error)
	// OnlineUserCount はオンラインユーザーセットの要素数を返す
	OnlineUserCount(ctx context.Context) (int64, error)
}

// CounterStore は集計カウンターへのアトミックアクセスを定義する。
// 単一コマンドのアトミック性のみを前提とし、read-modify-writeは行わない
type CounterStore interface {
	// Increment は指定キーをアトミックに+1する
	Increment(ctx context.Context, key string) error
	// Decrement は指定キーをアトミックに-1する（負値を許容する）
	Decrement(ctx context.Context, key string) error
	// Get は指定キーの整数値を返す（未存在時は0）
	Get(ctx context.Context, key string) (int64, error)
	// Set は指定キーの値を上書きする（Reconciler専用）
	Set(ctx context.Context, key string, value int64) error
}

// ScanStore はカーソルベースのキースペース走査を定義する。
// 無制限のリスト取得は行わず、必ずバッチ単位でカーソルを進める
type ScanStore interface {
	// ScanKeys はパターンに一致するキーをバッチごとにfnへ渡す
	ScanKeys(ctx context.Context, pattern string, fn func(keys []string) error) error
	// CountKeys はパターンに一致するキー数をSCANで数える
	CountKeys(ctx context.Context, pattern string) (int64, error)
	// ScanSetMembers は指定セットのメンバーをバッチごとにfnへ渡す
	ScanSetMembers(ctx context.Context, key string, fn func(members []string) error) error
	// ExistsPipelined は複数キーの存在をパイプラインで一括確認する
	ExistsPipelined(ctx context.Context, keys []string) ([]bool, error)
	// GetAllPipelined は複数ハッシュをパイプラインで一括取得する
	GetAllPipelined(ctx context.Context, keys []string) ([]map[string]string, error)
}

// Flusher はレジストリ状態の全消去を定義する
type Flusher interface {
	// Flush はレジストリ論理DBの全キーを削除する
	Flush(ctx context.Context) error
}
