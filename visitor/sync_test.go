package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	cache := NewSyncMap[string, int]()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Put("a", 1)
	value, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	cache.Put("a", 2)
	value, _ = cache.Get("a")
	assert.Equal(t, 2, value)
}
