package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shuvamd5/storefront-admin/internal/api/dto"
	"github.com/shuvamd5/storefront-admin/internal/model"
)

// OrderItems 拉取订单行项目明细
// 注意信封偏差：行项目数组放在 data 而不是 datas
func (c *Client) OrderItems(ctx context.Context, orderID model.EntityID) ([]model.OrderItem, error) {
	if orderID.IsPlaceholder() {
		return nil, ErrPlaceholderID
	}
	var env dto.ApiResponse[[]model.OrderItem]
	path := fmt.Sprintf("/order/%s/order-item/detail", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []model.OrderItem{}, nil
	}
	return *env.Data, nil
}
