package model

import (
	"strings"

	"github.com/google/uuid"
)

// EntityID 实体标识
// 两种来源：服务端签发的持久 ID，或本地生成的占位 ID。
// 占位 ID 只用于未持久化的合成行（如首屏的 "Loading..." 行），
// 网关层会拒绝携带占位 ID 的请求，防止把本地 ID 当真实 ID 提交。
type EntityID string

// 占位 ID 统一前缀，便于识别和校验
const placeholderPrefix = "local-"

// NewPlaceholderID 生成一个本地占位 ID
func NewPlaceholderID() EntityID {
	return EntityID(placeholderPrefix + uuid.NewString())
}

// IsPlaceholder 判断是否为本地占位 ID
func (id EntityID) IsPlaceholder() bool {
	return strings.HasPrefix(string(id), placeholderPrefix)
}

func (id EntityID) String() string {
	return string(id)
}

// Identifiable 所有远端实体的公共行为：暴露自己的 ID
// Store 泛型容器靠它做按 ID 替换 / 删除
type Identifiable interface {
	EntityID() EntityID
}
