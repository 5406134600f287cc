package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shuvamd5/storefront-admin/internal/controller"
	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/repository"
	"github.com/shuvamd5/storefront-admin/internal/router"
	"github.com/shuvamd5/storefront-admin/internal/service"
	"github.com/shuvamd5/storefront-admin/internal/session"
	"github.com/shuvamd5/storefront-admin/internal/store"
	"github.com/shuvamd5/storefront-admin/internal/task"
	"github.com/shuvamd5/storefront-admin/pkg/database"
)

func main() {
	// 1. 初始化本地数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 恢复本地会话
	if err := deps.Session.Hydrate(context.Background()); err != nil {
		log.Printf("警告: 会话恢复失败: %v", err)
	}

	// 4. 启动定时任务
	initTasks(deps)

	// 5. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Session, deps.Controllers)

	// 6. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Gateway     *gateway.Client
	Session     *session.Session
	Stores      *store.Stores
	Services    *Services
	Controllers router.Controllers
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	Order   *service.OrderService
	Draft   *service.DraftService
	Storage service.ImageStorage
}

// ==================== 初始化函数 ====================

// initDatabase 初始化本地数据库
func initDatabase() *gorm.DB {
	return database.InitDB(
		getEnv("LOCAL_DB_PATH", "storefront-admin.db"),
		&model.SessionEntry{},
		&model.FormDraft{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- 会话 --------
	sess := session.New(repository.NewSessionRepository(db))

	// -------- 远端网关 --------
	// Debug 会把完整请求体（含登录凭证）打进日志，默认关闭
	gw := gateway.NewClient(gateway.Config{
		BaseURL:      getEnv("REMOTE_BASE_URL", "https://multikart-backend.vercel.app/api"),
		APIKeyHeader: getEnv("REMOTE_API_KEY", "a7c136d2ebe03341d9bc2920b9247cb9c9"),
		Debug:        getEnv("REMOTE_DEBUG", "") == "true",
	}, sess)

	// -------- 本地 store --------
	stores := store.NewStores(gw)

	// -------- 业务服务 --------
	services := &Services{
		Auth:    service.NewAuthService(gw, sess, stores),
		Order:   service.NewOrderService(gw),
		Draft:   service.NewDraftService(repository.NewDraftRepository(db)),
		Storage: initStorage(),
	}

	return &Dependencies{
		DB:          db,
		Gateway:     gw,
		Session:     sess,
		Stores:      stores,
		Services:    services,
		Controllers: initControllers(gw, sess, stores, services),
	}
}

// initStorage 初始化图片存储
func initStorage() service.ImageStorage {
	storage, err := service.NewImageStorage(service.StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		Bucket:    getEnv("AWS_BUCKET", ""),
		Region:    getEnv("AWS_REGION", ""),
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
		CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
		BasePath:  getEnv("STORAGE_BASE_PATH", "storefront"),
	})
	if err != nil {
		log.Fatalf("存储服务初始化失败: %v", err)
	}
	return storage
}

// initControllers 初始化所有控制器
func initControllers(gw *gateway.Client, sess *session.Session, stores *store.Stores, svc *Services) router.Controllers {
	return router.Controllers{
		Auth:      controller.NewAuthController(svc.Auth, sess),
		Selection: controller.NewSelectionController(stores.Selection),
		Order:     controller.NewOrderController(svc.Order),
		Customer:  controller.NewCustomerController(gw),
		Draft:     controller.NewDraftController(svc.Draft),
		Upload:    controller.NewUploadController(svc.Storage),

		Categories:       controller.NewEntityController(stores.Categories, svc.Draft),
		Products:         controller.NewEntityController(stores.Products, svc.Draft),
		Tags:             controller.NewEntityController(stores.Tags, svc.Draft),
		VariantTypes:     controller.NewEntityController(stores.VariantTypes, svc.Draft),
		VariantValues:    controller.NewEntityController(stores.VariantValues, svc.Draft),
		Customers:        controller.NewEntityController(stores.Customers, svc.Draft),
		// 订单改动后作废行项目明细缓存，避免展开时拿到旧明细
		Orders: controller.NewEntityController(stores.Orders, svc.Draft,
			controller.WithAfterMutate(func(id model.EntityID) { svc.Order.InvalidateItems(id) })),
		ProductDiscounts: controller.NewEntityController(stores.ProductDiscounts, svc.Draft),
		OrderDiscounts:   controller.NewEntityController(stores.OrderDiscounts, svc.Draft),
		PromoCodes:       controller.NewEntityController(stores.PromoCodes, svc.Draft),
		Reviews:          controller.NewEntityController(stores.Reviews, svc.Draft),
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 数据周期刷新
	refreshTask := task.NewRefreshTask(deps.Stores, deps.Session)
	refreshTask.Start()

	// 草稿清理
	cleanupTask := task.NewDraftCleanupTask(deps.Services.Draft)
	cleanupTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
