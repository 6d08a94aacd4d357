package idgen_test

import (
	"testing"

	"keep-app/src/idgen"

	"github.com/stretchr/testify/assert"
)

func TestNewIDUnique(t *testing.T) {
	// 同一ミリ秒内の連続呼び出しでも衝突しないこと
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := idgen.NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id: %s", id)
		seen[id] = true
	}
}

func TestIsDemoID(t *testing.T) {
	assert.True(t, idgen.IsDemoID("demo1"))
	assert.True(t, idgen.IsDemoID("demo8"))
	assert.False(t, idgen.IsDemoID("1demo"))
	assert.False(t, idgen.IsDemoID(""))
	assert.False(t, idgen.IsDemoID("a2c4e6"))
}
