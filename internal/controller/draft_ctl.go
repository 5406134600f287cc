package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/service"
)

// ==================== 表单草稿控制器 ====================

// DraftController 查看/恢复/丢弃失败提交留底的表单
type DraftController struct {
	drafts *service.DraftService
}

func NewDraftController(drafts *service.DraftService) *DraftController {
	return &DraftController{drafts: drafts}
}

// List 某类资源的全部草稿
// @Summary 查询失败表单草稿
// @Tags Draft
// @Param resource path string true "资源名，如 product"
// @Success 200 {object} map[string]any
// @Router /api/drafts/{resource} [get]
func (ctl *DraftController) List(c *gin.Context) {
	resource := c.Param("resource")

	drafts, err := ctl.drafts.List(c.Request.Context(), resource)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "查询成功", "data": drafts})
}

// Restore 取回某个目标最近一份草稿的表单内容
// target 不传表示新增表单的草稿
// @Summary 恢复表单草稿
// @Tags Draft
// @Param resource path string true "资源名，如 product"
// @Param target query string false "目标记录 ID，新增表单留空"
// @Success 200 {object} map[string]any
// @Router /api/drafts/{resource}/restore [get]
func (ctl *DraftController) Restore(c *gin.Context) {
	resource := c.Param("resource")
	targetID := model.EntityID(c.Query("target"))

	payload, err := ctl.drafts.Restore(c.Request.Context(), resource, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "没有可恢复的草稿"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "查询成功", "data": payload})
}

// Discard 丢弃一份草稿
// @Summary 丢弃表单草稿
// @Tags Draft
// @Param id path int true "草稿ID"
// @Success 200 {object} map[string]any
// @Router /api/drafts/{id} [delete]
func (ctl *DraftController) Discard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "草稿 ID 无效"})
		return
	}

	if err := ctl.drafts.Discard(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "草稿已丢弃"})
}
