package model

import (
	"time"

	"gorm.io/datatypes"
)

// FormDraft 表单草稿
// 创建/编辑请求失败时把用户提交的内容原样留底，
// 用户无需重新录入即可重试；过期草稿由清理任务回收
type FormDraft struct {
	ID        int64          `gorm:"primaryKey;AUTO_INCREMENT" json:"id"`
	Resource  string         `gorm:"size:40;index:idx_draft_target" json:"resource"`
	TargetID  string         `gorm:"size:64;index:idx_draft_target" json:"target_id"`
	Payload   datatypes.JSON `json:"payload"`
	Reason    string         `gorm:"size:500" json:"reason"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (FormDraft) TableName() string { return "form_drafts" }
