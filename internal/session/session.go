package session

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/repository"
)

// Session 会话对象
// 显式注入，不做全局可变状态：
// 网关拿它取 token，路由守卫拿它判断登录态。
// 生命周期边界明确：启动时 Hydrate 从本地库恢复，
// 登录成功时 Establish，登出时 Clear。
type Session struct {
	mu      sync.RWMutex
	token   string
	storeID string

	repo repository.SessionRepository
}

// New 创建空会话（尚未恢复）
func New(repo repository.SessionRepository) *Session {
	return &Session{repo: repo}
}

// Hydrate 从本地库恢复 token / storeId
func (s *Session) Hydrate(ctx context.Context) error {
	token, err := s.repo.Get(ctx, model.SessionKeyToken)
	if err != nil {
		return fmt.Errorf("恢复会话失败: %v", err)
	}
	storeID, err := s.repo.Get(ctx, model.SessionKeyStoreID)
	if err != nil {
		return fmt.Errorf("恢复会话失败: %v", err)
	}

	s.mu.Lock()
	s.token = token
	s.storeID = storeID
	s.mu.Unlock()

	if token != "" {
		log.Println("[Session] 已从本地恢复会话")
	}
	return nil
}

// Establish 登录成功后建立会话并落库
func (s *Session) Establish(ctx context.Context, token, storeID string) error {
	if token == "" {
		return fmt.Errorf("登录响应缺少 token")
	}
	if err := s.repo.Set(ctx, model.SessionKeyToken, token); err != nil {
		return err
	}
	if storeID != "" {
		if err := s.repo.Set(ctx, model.SessionKeyStoreID, storeID); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.token = token
	if storeID != "" {
		s.storeID = storeID
	}
	s.mu.Unlock()
	return nil
}

// Clear 登出：内存与本地库一起清掉
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.storeID = ""
	s.mu.Unlock()

	return s.repo.Delete(ctx, model.SessionKeyToken, model.SessionKeyStoreID)
}

// Token 当前 token；实现 gateway.TokenProvider
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// StoreID 当前店铺 ID
func (s *Session) StoreID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.storeID
}

// Authenticated 是否已登录
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
