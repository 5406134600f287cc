package service

import (
	"context"
	"fmt"
	"log"

	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/session"
	"github.com/shuvamd5/storefront-admin/internal/store"
)

// AuthService 认证流程：登录、注册、密码找回/重置
// 表单校验在本地完成，不合法的请求不会发往远端
type AuthService struct {
	gateway *gateway.Client
	session *session.Session
	stores  *store.Stores
}

func NewAuthService(gw *gateway.Client, sess *session.Session, stores *store.Stores) *AuthService {
	return &AuthService{gateway: gw, session: sess, stores: stores}
}

// Login 登录并落地会话
func (s *AuthService) Login(ctx context.Context, payload model.LoginPayload) (*model.LoginResponse, error) {
	if payload.Username == "" || payload.Password == "" {
		return nil, fmt.Errorf("用户名和密码不能为空")
	}

	resp, err := s.gateway.Login(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("登录失败: %w", err)
	}

	if err := s.session.Establish(ctx, resp.Token, resp.StoreID); err != nil {
		return nil, err
	}

	log.Printf("[Auth] 登录成功, storeId=%s", resp.StoreID)
	return resp, nil
}

// Register 店铺注册
// 两次密码不一致时直接返回错误，不发起请求
func (s *AuthService) Register(ctx context.Context, payload model.RegisterPayload) (*model.LoginResponse, error) {
	if payload.Password != payload.ConfirmPassword {
		return nil, fmt.Errorf("两次输入的密码不一致")
	}
	if payload.UserName == "" || payload.StoreName == "" {
		return nil, fmt.Errorf("店铺名和用户名不能为空")
	}

	resp, err := s.gateway.Register(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("注册失败: %w", err)
	}
	return resp, nil
}

// ForgotPassword 发送找回密码邮件
func (s *AuthService) ForgotPassword(ctx context.Context, payload model.ForgotPasswordPayload) error {
	if payload.Email == "" {
		return fmt.Errorf("邮箱不能为空")
	}
	return s.gateway.ForgotPassword(ctx, payload)
}

// ResetPassword 重置密码
func (s *AuthService) ResetPassword(ctx context.Context, payload model.ResetPasswordPayload) error {
	if payload.Password != payload.ConfirmPassword {
		return fmt.Errorf("两次输入的密码不一致")
	}
	if payload.Token == "" {
		return fmt.Errorf("重置令牌不能为空")
	}
	return s.gateway.ResetPassword(ctx, payload)
}

// Logout 清空会话与联动选中态
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return err
	}
	s.stores.Selection.Reset()
	log.Println("[Auth] 会话已退出")
	return nil
}

// Stores 店铺列表（注册页下拉用）
func (s *AuthService) Stores(ctx context.Context) ([]model.Store, error) {
	return s.gateway.Stores(ctx)
}
