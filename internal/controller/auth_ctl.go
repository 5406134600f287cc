package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/service"
	"github.com/shuvamd5/storefront-admin/internal/session"
)

// ==================== 认证控制器 ====================

type AuthController struct {
	auth    *service.AuthService
	session *session.Session
}

func NewAuthController(auth *service.AuthService, sess *session.Session) *AuthController {
	return &AuthController{auth: auth, session: sess}
}

// Login 登录
// @Summary 登录并建立本地会话
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body model.LoginPayload true "登录凭证"
// @Success 200 {object} model.LoginResponse
// @Router /api/auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var payload model.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}

	resp, err := ctl.auth.Login(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register 店铺注册
// @Summary 注册新店铺
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body model.RegisterPayload true "注册信息"
// @Success 200 {object} model.LoginResponse
// @Router /api/auth/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var payload model.RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}

	resp, err := ctl.auth.Register(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword 找回密码
// @Summary 发送找回密码邮件
// @Tags Auth
// @Param payload body model.ForgotPasswordPayload true "邮箱"
// @Success 200 {object} map[string]any
// @Router /api/auth/forgot-password [post]
func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var payload model.ForgotPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}

	if err := ctl.auth.ForgotPassword(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "重置邮件已发送"})
}

// ResetPassword 重置密码
// @Summary 通过邮件令牌重置密码
// @Tags Auth
// @Param payload body model.ResetPasswordPayload true "新密码与令牌"
// @Success 200 {object} map[string]any
// @Router /api/auth/reset-password [post]
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var payload model.ResetPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}

	if err := ctl.auth.ResetPassword(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "密码已重置"})
}

// Logout 退出登录
// @Summary 清空本地会话
// @Tags Auth
// @Success 200 {object} map[string]any
// @Router /api/auth/logout [post]
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.auth.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "已退出登录"})
}

// Session 当前会话状态
// @Summary 查询当前登录状态
// @Tags Auth
// @Success 200 {object} map[string]any
// @Router /api/auth/session [get]
func (ctl *AuthController) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "查询成功",
		"data": gin.H{
			"authenticated": ctl.session.Authenticated(),
			"storeId":       ctl.session.StoreID(),
		},
	})
}

// Stores 店铺列表
// @Summary 店铺列表（注册页下拉）
// @Tags Auth
// @Success 200 {object} map[string]any
// @Router /api/auth/stores [get]
func (ctl *AuthController) Stores(c *gin.Context) {
	stores, err := ctl.auth.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "查询成功", "data": stores})
}
