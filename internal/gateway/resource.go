package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shuvamd5/storefront-admin/internal/api/dto"
	"github.com/shuvamd5/storefront-admin/internal/model"
)

// ErrPlaceholderID 占位 ID 不允许出现在任何远端请求里
var ErrPlaceholderID = fmt.Errorf("本地占位 ID 不能提交给远端")

// Resource 单实体类型的端点组
// 所有实体共用同一套路径约定：
//
//	GET  /{entity}/list
//	POST /{entity}/create
//	POST /{entity}/{id}/edit
//	POST /{entity}/{id}/delete   body = {voidRemarks}
//
// 个别实体的偏差（订单创建路径、评价的 DELETE 动词）通过 Option 覆盖。
type Resource[T model.Identifiable, P any] struct {
	client       *Client
	entity       string
	createPath   string
	deleteMethod string
}

// ResourceOption 端点组偏差配置
type ResourceOption func(*resourceOptions)

type resourceOptions struct {
	createPath   string
	deleteMethod string
}

// WithCreatePath 覆盖创建路径（订单创建是 POST /order）
func WithCreatePath(path string) ResourceOption {
	return func(o *resourceOptions) { o.createPath = path }
}

// WithDeleteMethod 覆盖删除动词（评价删除用 DELETE）
func WithDeleteMethod(method string) ResourceOption {
	return func(o *resourceOptions) { o.deleteMethod = method }
}

// NewResource 创建实体端点组
// entity 是路径段，如 "category"、"variant-type"
func NewResource[T model.Identifiable, P any](client *Client, entity string, opts ...ResourceOption) *Resource[T, P] {
	o := resourceOptions{
		createPath:   "/" + entity + "/create",
		deleteMethod: http.MethodPost,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[T, P]{
		client:       client,
		entity:       entity,
		createPath:   o.createPath,
		deleteMethod: o.deleteMethod,
	}
}

// List 拉取全量列表
// datas 缺失视为空列表，不算错误
func (r *Resource[T, P]) List(ctx context.Context) ([]T, error) {
	var env dto.ApiResponse[T]
	if err := r.client.do(ctx, http.MethodGet, "/"+r.entity+"/list", nil, &env); err != nil {
		return nil, err
	}
	if env.Datas == nil {
		return []T{}, nil
	}
	return env.Datas, nil
}

// Create 创建实体，返回带服务端 ID 的完整实体
// data 缺失时返回零值实体（ID 为空），调用方据此跳过本地追加
func (r *Resource[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var env dto.ApiResponse[T]
	var zero T
	if err := r.client.do(ctx, http.MethodPost, r.createPath, payload, &env); err != nil {
		return zero, err
	}
	if env.Data == nil {
		return zero, nil
	}
	return *env.Data, nil
}

// Update 编辑实体
func (r *Resource[T, P]) Update(ctx context.Context, id model.EntityID, payload P) (T, error) {
	var zero T
	if id.IsPlaceholder() {
		return zero, ErrPlaceholderID
	}
	var env dto.ApiResponse[T]
	path := fmt.Sprintf("/%s/%s/edit", r.entity, id)
	if err := r.client.do(ctx, http.MethodPost, path, payload, &env); err != nil {
		return zero, err
	}
	if env.Data == nil {
		return zero, nil
	}
	return *env.Data, nil
}

// Delete 软删除，必须携带作废原因
func (r *Resource[T, P]) Delete(ctx context.Context, id model.EntityID, voidRemarks string) error {
	if id.IsPlaceholder() {
		return ErrPlaceholderID
	}
	path := fmt.Sprintf("/%s/%s/delete", r.entity, id)
	return r.client.do(ctx, r.deleteMethod, path, model.DeletePayload{VoidRemarks: voidRemarks}, nil)
}
