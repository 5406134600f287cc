package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	SetCache("k1", "v1", time.Minute)

	got, ok := GetCache("k1")
	require.True(t, ok)
	assert.Equal(t, "v1", got)
}

func TestCacheExpires(t *testing.T) {
	SetCache("k2", "v2", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := GetCache("k2")
	assert.False(t, ok)
}

func TestCacheDelete(t *testing.T) {
	SetCache("k3", "v3", time.Minute)
	DeleteCache("k3")

	_, ok := GetCache("k3")
	assert.False(t, ok)
}

func TestCacheMiss(t *testing.T) {
	_, ok := GetCache("never-set")
	assert.False(t, ok)
}
