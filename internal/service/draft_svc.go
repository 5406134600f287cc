package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/repository"
)

// DraftService 失败表单留底
// 提交失败的新增/编辑请求体落库保存，便于用户稍后恢复重试
type DraftService struct {
	repo repository.DraftRepository
}

func NewDraftService(repo repository.DraftRepository) *DraftService {
	return &DraftService{repo: repo}
}

// KeepFailed 保存一份失败提交的表单快照
// targetID 为空表示新增表单，非空表示编辑表单
func (s *DraftService) KeepFailed(ctx context.Context, resource string, targetID model.EntityID, payload any, cause error) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化表单草稿失败: %w", err)
	}

	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	draft := &model.FormDraft{
		Resource: resource,
		TargetID: string(targetID),
		Payload:  raw,
		Reason:   reason,
	}
	if err := s.repo.Save(ctx, draft); err != nil {
		return fmt.Errorf("保存表单草稿失败: %w", err)
	}

	log.Printf("[Draft] 已留底 %s 表单草稿, target=%s", resource, targetID)
	return nil
}

// Restore 取回某个目标最近一份草稿的原始 JSON
func (s *DraftService) Restore(ctx context.Context, resource string, targetID model.EntityID) (json.RawMessage, error) {
	draft, err := s.repo.GetByTarget(ctx, resource, string(targetID))
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, nil
	}
	return json.RawMessage(draft.Payload), nil
}

// List 某类资源的全部草稿
func (s *DraftService) List(ctx context.Context, resource string) ([]model.FormDraft, error) {
	return s.repo.ListByResource(ctx, resource)
}

// Discard 丢弃一份草稿
func (s *DraftService) Discard(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// PurgeExpired 清理超过保留期的草稿，返回清理条数
func (s *DraftService) PurgeExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("清理过期草稿失败: %w", err)
	}
	if n > 0 {
		log.Printf("[Draft] 已清理 %d 条过期草稿", n)
	}
	return n, nil
}
