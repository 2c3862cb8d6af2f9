package registry

import "errors"

var (
	// ErrSessionNotFound はセッションが見つからない場合のエラー。
	// 終了済みセッションと元々存在しないキーは区別しない
	ErrSessionNotFound = errors.New("session not found")

	// ErrReconcileInProgress はReconcilerが既に実行中の場合のエラー
	ErrReconcileInProgress = errors.New("reconciliation already in progress")
)
