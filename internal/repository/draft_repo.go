package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shuvamd5/storefront-admin/internal/model"
)

// ==================== 接口定义 ====================

// DraftRepository 表单草稿仓储
type DraftRepository interface {
	Save(ctx context.Context, draft *model.FormDraft) error
	GetByTarget(ctx context.Context, resource, targetID string) (*model.FormDraft, error)
	ListByResource(ctx context.Context, resource string) ([]model.FormDraft, error)
	Delete(ctx context.Context, id int64) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ==================== 仓储实现 ====================

type draftRepo struct {
	db *gorm.DB
}

// NewDraftRepository 创建草稿仓储
func NewDraftRepository(db *gorm.DB) DraftRepository {
	return &draftRepo{db: db}
}

// Save 保存草稿；同一 resource+target 只留最新一份
func (r *draftRepo) Save(ctx context.Context, draft *model.FormDraft) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource = ? AND target_id = ?", draft.Resource, draft.TargetID).
			Delete(&model.FormDraft{}).Error; err != nil {
			return err
		}
		return tx.Create(draft).Error
	})
}

func (r *draftRepo) GetByTarget(ctx context.Context, resource, targetID string) (*model.FormDraft, error) {
	var draft model.FormDraft
	err := r.db.WithContext(ctx).
		Where("resource = ? AND target_id = ?", resource, targetID).
		Order("updated_at DESC").
		First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 没留过草稿不算错
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *draftRepo) ListByResource(ctx context.Context, resource string) ([]model.FormDraft, error) {
	var drafts []model.FormDraft
	err := r.db.WithContext(ctx).
		Where("resource = ?", resource).
		Order("updated_at DESC").
		Find(&drafts).Error
	return drafts, err
}

func (r *draftRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.FormDraft{}, id).Error
}

// DeleteOlderThan 清理过期草稿，返回清掉的条数
func (r *draftRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&model.FormDraft{})
	return res.RowsAffected, res.Error
}
