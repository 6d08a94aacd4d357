package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// demoPrefix デモノートの予約済みIDマーカー
const demoPrefix = "demo"

// NewID generates an opaque unique identifier.
// タイムスタンプのみの方式はミリ秒内の連続呼び出しで衝突するため、
// ランダム成分を持つUUIDv4を使用する
func NewID() string {
	return uuid.NewString()
}

// IsDemoID reports whether the id carries the reserved demo marker
func IsDemoID(id string) bool {
	return strings.HasPrefix(id, demoPrefix)
}
