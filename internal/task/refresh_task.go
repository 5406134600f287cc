package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shuvamd5/storefront-admin/internal/session"
	"github.com/shuvamd5/storefront-admin/internal/store"
)

// RefreshTask 周期性刷新全部本地 store
// 管理端展示的数据最多落后一个刷新周期
type RefreshTask struct {
	Stores  *store.Stores
	Session *session.Session
	Cron    *cron.Cron
}

func NewRefreshTask(stores *store.Stores, sess *session.Session) *RefreshTask {
	return &RefreshTask{
		Stores:  stores,
		Session: sess,
		Cron:    cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *RefreshTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		log.Println("[Task] 服务启动，正在执行首次数据拉取...")
		t.refreshJob(ctx)
	}()

	// 每 10 分钟刷新一轮
	_, err := t.Cron.AddFunc("0 0/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		t.refreshJob(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动数据刷新定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("数据刷新任务已启动 (每10分钟刷新一次)")
}

// Stop 停止任务
func (t *RefreshTask) Stop() {
	t.Cron.Stop()
}

func (t *RefreshTask) refreshJob(ctx context.Context) {
	// 未登录时没有 token，拉了也是 401，直接跳过
	if !t.Session.Authenticated() {
		log.Println("[Cron] 尚未登录，跳过本轮刷新")
		return
	}

	start := time.Now()
	if err := t.Stores.RefreshAll(ctx); err != nil {
		log.Printf("[Cron] 数据刷新部分失败: %v", err)
		return
	}
	log.Printf("[Cron] 数据刷新完成，耗时 %v", time.Since(start))
}
