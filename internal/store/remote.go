package store

import (
	"context"

	"github.com/shuvamd5/storefront-admin/internal/model"
)

// Remote store 对网关的依赖
// gateway.Resource 直接实现它；路径约定之外的实体用 RemoteFuncs 适配
type Remote[T model.Identifiable, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id model.EntityID, payload P) (T, error)
	Delete(ctx context.Context, id model.EntityID, voidRemarks string) error
}

// RemoteFuncs 函数式 Remote 适配器
// 评价这类"列表依赖当前选中商品"的实体用闭包接上网关
type RemoteFuncs[T model.Identifiable, P any] struct {
	ListFunc   func(ctx context.Context) ([]T, error)
	CreateFunc func(ctx context.Context, payload P) (T, error)
	UpdateFunc func(ctx context.Context, id model.EntityID, payload P) (T, error)
	DeleteFunc func(ctx context.Context, id model.EntityID, voidRemarks string) error
}

func (r RemoteFuncs[T, P]) List(ctx context.Context) ([]T, error) {
	return r.ListFunc(ctx)
}

func (r RemoteFuncs[T, P]) Create(ctx context.Context, payload P) (T, error) {
	return r.CreateFunc(ctx, payload)
}

func (r RemoteFuncs[T, P]) Update(ctx context.Context, id model.EntityID, payload P) (T, error) {
	return r.UpdateFunc(ctx, id, payload)
}

func (r RemoteFuncs[T, P]) Delete(ctx context.Context, id model.EntityID, voidRemarks string) error {
	return r.DeleteFunc(ctx, id, voidRemarks)
}
