package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shuvamd5/storefront-admin/internal/service"
)

// 草稿保留 7 天，足够用户回头恢复
const draftRetention = 7 * 24 * time.Hour

// DraftCleanupTask 定期清理过期的失败表单草稿
type DraftCleanupTask struct {
	Drafts *service.DraftService
	Cron   *cron.Cron
}

func NewDraftCleanupTask(drafts *service.DraftService) *DraftCleanupTask {
	return &DraftCleanupTask{
		Drafts: drafts,
		Cron:   cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务
func (t *DraftCleanupTask) Start() {
	// 每天凌晨 3 点清理一次
	_, err := t.Cron.AddFunc("0 0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, err := t.Drafts.PurgeExpired(ctx, draftRetention); err != nil {
			log.Printf("[Cron] 草稿清理失败: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("无法启动草稿清理定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("草稿清理任务已启动 (每天凌晨3点)")
}

// Stop 停止任务
func (t *DraftCleanupTask) Stop() {
	t.Cron.Stop()
}
