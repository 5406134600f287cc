package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/pkg/utils"
)

// 订单行项目明细短时间内重复展开很常见，缓存一小段时间
const orderItemsCacheTTL = 2 * time.Minute

// OrderService 订单明细查询（带内存缓存）
type OrderService struct {
	gateway *gateway.Client
}

func NewOrderService(gw *gateway.Client) *OrderService {
	return &OrderService{gateway: gw}
}

// Items 拉取某订单的行项目明细
func (s *OrderService) Items(ctx context.Context, orderID model.EntityID) ([]model.OrderItem, error) {
	if orderID == "" {
		return nil, fmt.Errorf("订单 ID 不能为空")
	}
	if orderID.IsPlaceholder() {
		return nil, fmt.Errorf("订单尚未保存，没有行项目明细")
	}

	cacheKey := "order-items:" + string(orderID)
	if cached, ok := utils.GetCache(cacheKey); ok {
		return cached.([]model.OrderItem), nil
	}

	items, err := s.gateway.OrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	utils.SetCache(cacheKey, items, orderItemsCacheTTL)
	return items, nil
}

// InvalidateItems 订单被编辑/作废后清掉对应缓存
func (s *OrderService) InvalidateItems(orderID model.EntityID) {
	utils.DeleteCache("order-items:" + string(orderID))
}
