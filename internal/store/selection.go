package store

import (
	"sync"

	"github.com/shuvamd5/storefront-admin/internal/model"
)

// Selection 跨实体的选中状态快照
type Selection struct {
	SelectedCategoryID    model.EntityID `json:"selectedCategoryId"`
	SelectedProductID     model.EntityID `json:"selectedProductId"`
	SelectedVariantTypeID model.EntityID `json:"selectedVariantTypeId"`
}

// Coordinator 选中状态协调器
// 三级严格层级：分类 → 商品 → 变体类型。
// 父级一变就无条件清空所有子级——不判断是否匹配，
// 防止过期的子级 ID 悄悄活过父级切换，把下游筛出空表或错表。
// 这是协调器唯一要维护的不变式：
//
//	selectedProductId 为空，或其商品属于 selectedCategoryId；
//	selectedVariantTypeId 为空，或其类型挂在 selectedProductId 下。
//
// 选中状态只能通过下面三个 setter 改动，别的组件不许直接写。
type Coordinator struct {
	mu            sync.RWMutex
	categoryID    model.EntityID
	productID     model.EntityID
	variantTypeID model.EntityID
}

// NewCoordinator 初始态全空
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// SelectCategory 选中分类；商品和变体类型一并清空
func (c *Coordinator) SelectCategory(id model.EntityID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categoryID = id
	c.productID = ""
	c.variantTypeID = ""
}

// SelectProduct 选中商品；只清空变体类型，不动分类
// （商品可以从未筛选的全量列表里直接选，不要求先选分类）
func (c *Coordinator) SelectProduct(id model.EntityID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.productID = id
	c.variantTypeID = ""
}

// SelectVariantType 选中变体类型；层级叶子，不再级联
func (c *Coordinator) SelectVariantType(id model.EntityID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.variantTypeID = id
}

// Reset 全部清空（登出时用）
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categoryID = ""
	c.productID = ""
	c.variantTypeID = ""
}

// Snapshot 当前选中状态
func (c *Coordinator) Snapshot() Selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Selection{
		SelectedCategoryID:    c.categoryID,
		SelectedProductID:     c.productID,
		SelectedVariantTypeID: c.variantTypeID,
	}
}

// SelectedCategoryID 当前选中分类
func (c *Coordinator) SelectedCategoryID() model.EntityID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categoryID
}

// SelectedProductID 当前选中商品
func (c *Coordinator) SelectedProductID() model.EntityID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.productID
}

// SelectedVariantTypeID 当前选中变体类型
func (c *Coordinator) SelectedVariantTypeID() model.EntityID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.variantTypeID
}
