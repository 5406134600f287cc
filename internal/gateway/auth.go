package gateway

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/shuvamd5/storefront-admin/internal/api/dto"
	"github.com/shuvamd5/storefront-admin/internal/model"
)

// ==================== 认证端点 ====================

// Login 登录
// 凭证同时走 Basic 头和请求体，这是远端的约定
func (c *Client) Login(ctx context.Context, payload model.LoginPayload) (*model.LoginResponse, error) {
	basic := base64.StdEncoding.EncodeToString([]byte(payload.Username + ":" + payload.Password))

	var out model.LoginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Basic "+basic).
		SetBody(payload).
		SetResult(&out).
		Post("/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, httpError(resp)
	}
	return &out, nil
}

// Register 店铺注册
func (c *Client) Register(ctx context.Context, payload model.RegisterPayload) (*model.LoginResponse, error) {
	var out model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/register", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword 发送找回密码邮件
func (c *Client) ForgotPassword(ctx context.Context, payload model.ForgotPasswordPayload) error {
	return c.do(ctx, http.MethodPost, "/forgot-password", payload, nil)
}

// ResetPassword 重置密码
func (c *Client) ResetPassword(ctx context.Context, payload model.ResetPasswordPayload) error {
	return c.do(ctx, http.MethodPost, "/reset-password", payload, nil)
}

// Stores 拉取店铺列表（注册/选择器用）
func (c *Client) Stores(ctx context.Context) ([]model.Store, error) {
	var env dto.ApiResponse[model.Store]
	if err := c.do(ctx, http.MethodGet, "/stores", nil, &env); err != nil {
		return nil, err
	}
	if env.Datas == nil {
		return []model.Store{}, nil
	}
	return env.Datas, nil
}
