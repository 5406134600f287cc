package model

import "time"

// SessionEntry 本地会话键值行
// token / storeId 落在本地 sqlite，进程重启后可以恢复会话
type SessionEntry struct {
	Key       string    `gorm:"primaryKey;size:32" json:"key"`
	Value     string    `gorm:"size:1024" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 会话键名
const (
	SessionKeyToken   = "token"
	SessionKeyStoreID = "storeId"
)
