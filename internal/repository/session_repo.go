package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shuvamd5/storefront-admin/internal/model"
)

// ==================== 接口定义 ====================

// SessionRepository 本地会话键值仓储
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// ==================== 仓储实现 ====================

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepository 创建会话仓储
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

// Get 取键值；键不存在返回空串，不算错误
func (r *sessionRepo) Get(ctx context.Context, key string) (string, error) {
	var entry model.SessionEntry
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// Set 写键值（Upsert）
func (r *sessionRepo) Set(ctx context.Context, key, value string) error {
	entry := model.SessionEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// Delete 删除若干键（登出清理）
func (r *sessionRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("key IN ?", keys).
		Delete(&model.SessionEntry{}).Error
}
