package store

import "strings"

// Valkeyキースキーマ。全キーはレジストリ専用の論理DBに隔離される
const (
	KeyPrefixSession = "session:"       // セッションレコード: session:{nasIp}:{sessionId}（ハッシュ）
	KeyPrefixUserIdx = "user:sessions:" // ユーザー別インデックス: user:sessions:{username}（セット）
	KeyPrefixNasIdx  = "nas:sessions:"  // NAS別インデックス: nas:sessions:{nasIp}（セット）
	KeyOnlineUsers   = "online:users"   // オンラインユーザー全体（セット）
	KeyCountSessions = "online:count:sessions" // ライブセッション数（整数）
	KeyCountUsers    = "online:count:users"    // オンラインユーザー数（整数）
)

// SessionKey は(NAS IP, Acct-Session-Id)の複合キーを返す。
func SessionKey(nasIP, sessionID string) string {
	return KeyPrefixSession + nasIP + ":" + sessionID
}

// UserIndexKey は指定されたユーザーのインデックスキーを返す。
func UserIndexKey(username string) string {
	return KeyPrefixUserIdx + username
}

// NasIndexKey は指定されたNASのインデックスキーを返す。
func NasIndexKey(nasIP string) string {
	return KeyPrefixNasIdx + nasIP
}

// SplitSessionKey は session:{nasIp}:{sessionId} 形式のキーを分解する。
// NAS IPはIPv4表記（コロンを含まない）を前提とする。
func SplitSessionKey(key string) (nasIP, sessionID string, ok bool) {
	rest, found := strings.CutPrefix(key, KeyPrefixSession)
	if !found {
		return "", "", false
	}
	nasIP, sessionID, ok = strings.Cut(rest, ":")
	if !ok || nasIP == "" || sessionID == "" {
		return "", "", false
	}
	return nasIP, sessionID, true
}
