package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shuvamd5/storefront-admin/internal/controller"
	"github.com/shuvamd5/storefront-admin/internal/middleware"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/session"

	_ "github.com/shuvamd5/storefront-admin/docs"
)

// Controllers 路由需要的全部控制器
type Controllers struct {
	Auth      *controller.AuthController
	Selection *controller.SelectionController
	Order     *controller.OrderController
	Customer  *controller.CustomerController
	Draft     *controller.DraftController
	Upload    *controller.UploadController

	Categories       *controller.EntityController[model.Category, model.CategoryPayload]
	Products         *controller.EntityController[model.Product, model.ProductPayload]
	Tags             *controller.EntityController[model.Tag, model.TagPayload]
	VariantTypes     *controller.EntityController[model.VariantType, model.VariantTypePayload]
	VariantValues    *controller.EntityController[model.VariantValue, model.VariantValuePayload]
	Customers        *controller.EntityController[model.Customer, model.CustomerRegisterPayload]
	Orders           *controller.EntityController[model.Order, model.OrderPayload]
	ProductDiscounts *controller.EntityController[model.ProductDiscount, model.ProductDiscountPayload]
	OrderDiscounts   *controller.EntityController[model.OrderDiscount, model.OrderDiscountPayload]
	PromoCodes       *controller.EntityController[model.PromoCode, model.PromoCodePayload]
	Reviews          *controller.EntityController[model.ProductReview, model.ProductReviewPayload]
}

// entityRoutes 单个实体 store 的标准路由组
func entityRoutes[T model.Identifiable, P any](g *gin.RouterGroup, path string, ctl *controller.EntityController[T, P]) {
	grp := g.Group(path)
	{
		grp.GET("", ctl.List)
		grp.GET("/state", ctl.State)
		grp.GET("/:id", ctl.Get)
		grp.POST("", ctl.Create)
		grp.PUT("/:id", ctl.Update)
		grp.DELETE("/:id", ctl.Delete)
	}
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, sess *session.Session, ctls Controllers) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// auth 鉴权组（不走路由守卫）
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctls.Auth.Login)
		auth.POST("/register", ctls.Auth.Register)
		auth.POST("/forgot-password", ctls.Auth.ForgotPassword)
		auth.POST("/reset-password", ctls.Auth.ResetPassword)
		auth.POST("/logout", ctls.Auth.Logout)
		auth.GET("/session", ctls.Auth.Session)
		auth.GET("/stores", ctls.Auth.Stores)
	}

	// 其余接口需要已登录会话
	guarded := api.Group("")
	guarded.Use(middleware.AuthGuard(sess))
	{
		// 实体 store 标准增删改查
		entityRoutes(guarded, "/categories", ctls.Categories)
		entityRoutes(guarded, "/products", ctls.Products)
		entityRoutes(guarded, "/tags", ctls.Tags)
		entityRoutes(guarded, "/variant-types", ctls.VariantTypes)
		entityRoutes(guarded, "/variant-values", ctls.VariantValues)
		entityRoutes(guarded, "/customers", ctls.Customers)
		entityRoutes(guarded, "/orders", ctls.Orders)
		entityRoutes(guarded, "/product-discounts", ctls.ProductDiscounts)
		entityRoutes(guarded, "/order-discounts", ctls.OrderDiscounts)
		entityRoutes(guarded, "/promo-codes", ctls.PromoCodes)
		entityRoutes(guarded, "/reviews", ctls.Reviews)

		// 选中联动
		sel := guarded.Group("/selection")
		{
			sel.GET("", ctls.Selection.Snapshot)
			sel.POST("/category", ctls.Selection.SelectCategory)
			sel.POST("/product", ctls.Selection.SelectProduct)
			sel.POST("/variant-type", ctls.Selection.SelectVariantType)
			sel.POST("/reset", ctls.Selection.Reset)
		}

		// 订单明细 / 客户档案
		guarded.GET("/orders/:id/items", ctls.Order.Items)
		guarded.GET("/customers/:id/profile", ctls.Customer.Profile)

		// 表单草稿
		drafts := guarded.Group("/drafts")
		{
			drafts.GET("/:resource", ctls.Draft.List)
			drafts.GET("/:resource/restore", ctls.Draft.Restore)
			drafts.DELETE("/id/:id", ctls.Draft.Discard)
		}

		// 图片上传
		guarded.POST("/upload/image", ctls.Upload.Image)
	}
}
