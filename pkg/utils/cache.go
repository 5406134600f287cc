package utils

import (
	"sync"
	"time"
)

// 使用 sync.Map 保证并发安全
var memoryCache sync.Map

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      any
	expiration int64
}

// SetCache 设置缓存
// ttl <= 0 时用默认 5 分钟
func SetCache(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	memoryCache.Store(key, cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl).UnixNano(),
	})
}

// GetCache 获取缓存并验证是否过期
func GetCache(key string) (any, bool) {
	val, ok := memoryCache.Load(key)
	if !ok {
		return nil, false
	}

	item := val.(cacheItem)

	// 检查是否过期
	if time.Now().UnixNano() > item.expiration {
		memoryCache.Delete(key) // 懒删除
		return nil, false
	}

	return item.value, true
}

// DeleteCache 删除缓存
func DeleteCache(key string) {
	memoryCache.Delete(key)
}
