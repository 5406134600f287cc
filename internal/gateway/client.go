package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// 默认超时：普通 CRUD 给 20s，与表单交互节奏匹配
const defaultTimeout = 20 * time.Second

// TokenProvider 提供当前会话 token
// 未登录时返回空串，此时不带 Authorization 头
type TokenProvider interface {
	Token() string
}

// Config 网关配置
type Config struct {
	// BaseURL 远端店面后端地址，如 http://localhost:8000
	BaseURL string

	// APIKeyHeader 共享 API-Key 头
	// 远端的约定比较特别：头的名字就是 key 本身，值为空串
	APIKeyHeader string

	// Timeout 单次请求超时；零值用默认
	Timeout time.Duration

	// Debug 打印请求/响应明细（上线关掉）
	Debug bool
}

// Client 远端实体网关
// 全系统统一的网络请求入口，所有实体端点共用一个底层连接
type Client struct {
	http   *resty.Client
	tokens TokenProvider
}

// NewClient 创建网关客户端
func NewClient(cfg Config, tokens TokenProvider) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetDebug(cfg.Debug).
		SetHeader("Content-Type", "application/json")

	if cfg.APIKeyHeader != "" {
		hc.SetHeader(cfg.APIKeyHeader, "")
	}

	c := &Client{http: hc, tokens: tokens}

	// 登录后所有请求自动带 token（注意 scheme 是 Token 不是 Bearer）
	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get("Authorization") != "" {
			return nil // 登录等接口自带 Basic 头，不覆盖
		}
		if t := c.tokens.Token(); t != "" {
			req.SetHeader("Authorization", "Token "+t)
		}
		return nil
	})

	return c
}

// do 发送请求并归一化错误
// 只有两类情况算错：网络/传输失败、非 2xx 状态码。
// 信封里 data/datas 缺失由调用方按空结果处理。
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("请求远端失败: %v", err)
	}
	if resp.IsError() {
		return httpError(resp)
	}
	return nil
}

// httpError 把非 2xx 响应压成一条可读错误
func httpError(resp *resty.Response) error {
	msg := strings.TrimSpace(resp.String())
	if msg == "" {
		msg = resp.Status()
	}
	return fmt.Errorf("远端返回 %d: %s", resp.StatusCode(), msg)
}
