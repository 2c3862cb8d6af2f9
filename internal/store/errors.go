package store

import "errors"

var (
	// ErrStoreUnavailable はValkeyへの接続が利用不可能な場合のエラー
	ErrStoreUnavailable = errors.New("registry store unavailable")

	// ErrKeyNotFound は指定されたキーが存在しない場合のエラー
	ErrKeyNotFound = errors.New("key not found")
)
