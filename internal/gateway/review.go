package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shuvamd5/storefront-admin/internal/api/dto"
	"github.com/shuvamd5/storefront-admin/internal/model"
)

// ReviewsByProduct 拉取某个商品下的全部评价
// 评价没有全局 list 端点，只能按商品查；数组同样放在 data
func (c *Client) ReviewsByProduct(ctx context.Context, productID model.EntityID) ([]model.ProductReview, error) {
	if productID.IsPlaceholder() {
		return nil, ErrPlaceholderID
	}
	var env dto.ApiResponse[[]model.ProductReview]
	path := fmt.Sprintf("/product-review/%s", productID)
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []model.ProductReview{}, nil
	}
	return *env.Data, nil
}

// CustomerProfile 拉取单个客户档案
func (c *Client) CustomerProfile(ctx context.Context, customerID model.EntityID) (*model.Customer, error) {
	if customerID.IsPlaceholder() {
		return nil, ErrPlaceholderID
	}
	var env dto.ApiResponse[model.Customer]
	path := fmt.Sprintf("/customer/%s/profile", customerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("远端未返回客户档案")
	}
	return env.Data, nil
}
