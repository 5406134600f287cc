package store

import (
	"context"
	"fmt"

	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
)

// Stores 全部实体 store 的容器
// 每个实体类型一个独立实例，互不阻塞；Selection 是唯一的跨 store 共享状态
type Stores struct {
	Categories       *Store[model.Category, model.CategoryPayload]
	Products         *Store[model.Product, model.ProductPayload]
	Tags             *Store[model.Tag, model.TagPayload]
	VariantTypes     *Store[model.VariantType, model.VariantTypePayload]
	VariantValues    *Store[model.VariantValue, model.VariantValuePayload]
	Customers        *Store[model.Customer, model.CustomerRegisterPayload]
	Orders           *Store[model.Order, model.OrderPayload]
	ProductDiscounts *Store[model.ProductDiscount, model.ProductDiscountPayload]
	OrderDiscounts   *Store[model.OrderDiscount, model.OrderDiscountPayload]
	PromoCodes       *Store[model.PromoCode, model.PromoCodePayload]
	Reviews          *Store[model.ProductReview, model.ProductReviewPayload]

	Selection *Coordinator
}

// NewStores 按远端路径约定装配全部 store
func NewStores(client *gateway.Client) *Stores {
	selection := NewCoordinator()

	// 评价的列表依赖当前选中商品，其余操作走通用约定
	reviewRes := gateway.NewResource[model.ProductReview, model.ProductReviewPayload](
		client, "product-review", gateway.WithDeleteMethod("DELETE"))
	reviewRemote := RemoteFuncs[model.ProductReview, model.ProductReviewPayload]{
		ListFunc: func(ctx context.Context) ([]model.ProductReview, error) {
			pid := selection.SelectedProductID()
			if pid == "" {
				return nil, fmt.Errorf("请先选择商品再查看评价")
			}
			return client.ReviewsByProduct(ctx, pid)
		},
		CreateFunc: reviewRes.Create,
		UpdateFunc: reviewRes.Update,
		DeleteFunc: reviewRes.Delete,
	}

	return &Stores{
		Categories: New[model.Category, model.CategoryPayload]("category",
			gateway.NewResource[model.Category, model.CategoryPayload](client, "category"),
			WithPlaceholder(model.Category{
				ID: model.NewPlaceholderID(), Category: "Loading...", AltText: "Placeholder",
			})),
		Products: New[model.Product, model.ProductPayload]("product",
			gateway.NewResource[model.Product, model.ProductPayload](client, "product"),
			WithPlaceholder(model.Product{
				ID: model.NewPlaceholderID(), Product: "Loading...", AltText: "Placeholder",
			})),
		Tags: New[model.Tag, model.TagPayload]("tag",
			gateway.NewResource[model.Tag, model.TagPayload](client, "tag"),
			WithPlaceholder(model.Tag{
				ID: model.NewPlaceholderID(), Tag: "Loading...",
			})),
		VariantTypes: New[model.VariantType, model.VariantTypePayload]("variant-type",
			gateway.NewResource[model.VariantType, model.VariantTypePayload](client, "variant-type"),
			WithPlaceholder(model.VariantType{
				ID: model.NewPlaceholderID(), VariantType: "Loading...",
			})),
		VariantValues: New[model.VariantValue, model.VariantValuePayload]("variant-value",
			gateway.NewResource[model.VariantValue, model.VariantValuePayload](client, "variant-value"),
			WithPlaceholder(model.VariantValue{
				ID: model.NewPlaceholderID(), VariantName: "Loading...",
			})),
		Customers: New[model.Customer, model.CustomerRegisterPayload]("customer",
			gateway.NewResource[model.Customer, model.CustomerRegisterPayload](
				client, "customer", gateway.WithCreatePath("/customer/register"))),
		Orders: New[model.Order, model.OrderPayload]("order",
			gateway.NewResource[model.Order, model.OrderPayload](
				client, "order", gateway.WithCreatePath("/order"))),
		ProductDiscounts: New[model.ProductDiscount, model.ProductDiscountPayload]("product-discount",
			gateway.NewResource[model.ProductDiscount, model.ProductDiscountPayload](client, "product-discount")),
		OrderDiscounts: New[model.OrderDiscount, model.OrderDiscountPayload]("order-discount",
			gateway.NewResource[model.OrderDiscount, model.OrderDiscountPayload](client, "order-discount")),
		PromoCodes: New[model.PromoCode, model.PromoCodePayload]("promo-code",
			gateway.NewResource[model.PromoCode, model.PromoCodePayload](client, "promo-code")),
		Reviews:   New[model.ProductReview, model.ProductReviewPayload]("product-review", reviewRemote),
		Selection: selection,
	}
}

// RefreshAll 依次刷新所有有全量列表端点的 store
// 评价列表依赖选中商品，这里跳过
func (s *Stores) RefreshAll(ctx context.Context) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	_, err := s.Categories.FetchAll(ctx)
	keep(err)
	_, err = s.Products.FetchAll(ctx)
	keep(err)
	_, err = s.Tags.FetchAll(ctx)
	keep(err)
	_, err = s.VariantTypes.FetchAll(ctx)
	keep(err)
	_, err = s.VariantValues.FetchAll(ctx)
	keep(err)
	_, err = s.Customers.FetchAll(ctx)
	keep(err)
	_, err = s.Orders.FetchAll(ctx)
	keep(err)
	_, err = s.ProductDiscounts.FetchAll(ctx)
	keep(err)
	_, err = s.OrderDiscounts.FetchAll(ctx)
	keep(err)
	_, err = s.PromoCodes.FetchAll(ctx)
	keep(err)

	return firstErr
}
