// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// MaskUsername は加入者ユーザー名をマスキングする。
// realm部（@以降）は保持し、ローカル部を先頭2文字 + マスク + 末尾1文字にする。
// 例: alice.smith@example.com → al********h@example.com
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskUsername(username string, enabled bool) string {
	if !enabled {
		return username
	}

	local := username
	realm := ""
	if at := strings.Index(username, "@"); at >= 0 {
		local = username[:at]
		realm = username[at:]
	}

	return MaskPartial(local, 2, 1, '*') + realm
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix {
		return s
	}

	result := make([]rune, length)
	copy(result, runes[:keepPrefix])
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result[i] = maskChar
	}
	copy(result[length-keepSuffix:], runes[length-keepSuffix:])

	return string(result)
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// Username はユーザー名をマスキングする。
func (m *Masker) Username(username string) string {
	return MaskUsername(username, m.enabled)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
