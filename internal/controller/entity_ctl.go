package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/api/dto"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/service"
	"github.com/shuvamd5/storefront-admin/internal/store"
)

// ==================== 通用实体控制器 ====================

// EntityController 把一个本地 store 的增删改查暴露为 HTTP 接口
// 所有实体（分类、商品、标签、订单等）共用同一套处理逻辑
type EntityController[T model.Identifiable, P any] struct {
	store       *store.Store[T, P]
	drafts      *service.DraftService
	afterMutate func(model.EntityID)
}

// EntityOption 控制器装配配置
type EntityOption func(*entityOptions)

type entityOptions struct {
	afterMutate func(model.EntityID)
}

// WithAfterMutate 编辑/删除成功后的回调
// 订单控制器用它作废行项目明细缓存，避免刚改完的订单拿到旧明细
func WithAfterMutate(fn func(model.EntityID)) EntityOption {
	return func(o *entityOptions) { o.afterMutate = fn }
}

func NewEntityController[T model.Identifiable, P any](s *store.Store[T, P], drafts *service.DraftService, opts ...EntityOption) *EntityController[T, P] {
	var o entityOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &EntityController[T, P]{store: s, drafts: drafts, afterMutate: o.afterMutate}
}

// snapshot 当前 store 状态快照
func (ctl *EntityController[T, P]) snapshot(code int, message string) dto.StateResp {
	return dto.StateResp{
		Code:    code,
		Message: message,
		Data:    ctl.store.Items(),
		Loading: ctl.store.State() == store.StatePending,
		Error:   ctl.store.Err(),
	}
}

// List 触发一次远端拉取并返回最新快照
func (ctl *EntityController[T, P]) List(c *gin.Context) {
	if _, err := ctl.store.FetchAll(c.Request.Context()); err != nil {
		// 拉取失败时仍返回旧数据（可见但可能过期）
		c.JSON(http.StatusOK, ctl.snapshot(502, "拉取远端数据失败"))
		return
	}
	c.JSON(http.StatusOK, ctl.snapshot(200, "查询成功"))
}

// State 返回当前快照，不触发远端请求
func (ctl *EntityController[T, P]) State(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.snapshot(200, "查询成功"))
}

// Get 按 ID 查单条
func (ctl *EntityController[T, P]) Get(c *gin.Context) {
	id := model.EntityID(c.Param("id"))
	ent, ok := ctl.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "记录不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "查询成功", "data": ent})
}

// Create 新增
// 远端失败时把表单留底，方便稍后恢复重试
func (ctl *EntityController[T, P]) Create(c *gin.Context) {
	var payload P
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}

	if _, err := ctl.store.Create(c.Request.Context(), payload); err != nil {
		ctl.keepDraft(c, "", payload, err)
		c.JSON(http.StatusBadGateway, ctl.snapshot(502, "新增失败，表单已留底"))
		return
	}
	c.JSON(http.StatusOK, ctl.snapshot(200, "新增成功"))
}

// Update 编辑
func (ctl *EntityController[T, P]) Update(c *gin.Context) {
	id := model.EntityID(c.Param("id"))

	var payload P
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}

	if _, err := ctl.store.Update(c.Request.Context(), id, payload); err != nil {
		ctl.keepDraft(c, id, payload, err)
		c.JSON(http.StatusBadGateway, ctl.snapshot(502, "编辑失败，表单已留底"))
		return
	}
	if ctl.afterMutate != nil {
		ctl.afterMutate(id)
	}
	c.JSON(http.StatusOK, ctl.snapshot(200, "编辑成功"))
}

// Delete 删除（远端为作废语义，带作废备注）
func (ctl *EntityController[T, P]) Delete(c *gin.Context) {
	id := model.EntityID(c.Param("id"))

	var payload model.DeletePayload
	// 删除备注可以不传
	_ = c.ShouldBindJSON(&payload)

	if err := ctl.store.Delete(c.Request.Context(), id, payload.VoidRemarks); err != nil {
		c.JSON(http.StatusBadGateway, ctl.snapshot(502, "删除失败"))
		return
	}
	if ctl.afterMutate != nil {
		ctl.afterMutate(id)
	}
	c.JSON(http.StatusOK, ctl.snapshot(200, "删除成功"))
}

func (ctl *EntityController[T, P]) keepDraft(c *gin.Context, targetID model.EntityID, payload P, cause error) {
	if ctl.drafts == nil {
		return
	}
	if err := ctl.drafts.KeepFailed(c.Request.Context(), ctl.store.Name(), targetID, payload, cause); err != nil {
		log.Printf("[Draft] 留底失败: %v", err)
	}
}
