package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/api/dto"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/store"
)

// ==================== 选中联动控制器 ====================

// SelectionController 维护分类 → 商品 → 规格类型的级联选中状态
type SelectionController struct {
	selection *store.Coordinator
}

func NewSelectionController(sel *store.Coordinator) *SelectionController {
	return &SelectionController{selection: sel}
}

type selectReq struct {
	ID model.EntityID `json:"id"`
}

func (ctl *SelectionController) ok(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SelectionResp{
		Code:    200,
		Message: message,
		Data:    ctl.selection.Snapshot(),
	})
}

// Snapshot 当前选中状态
func (ctl *SelectionController) Snapshot(c *gin.Context) {
	ctl.ok(c, "查询成功")
}

// SelectCategory 选中分类，下游商品/规格类型选中无条件清空
func (ctl *SelectionController) SelectCategory(c *gin.Context) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}
	ctl.selection.SelectCategory(req.ID)
	ctl.ok(c, "已选中分类")
}

// SelectProduct 选中商品，规格类型选中清空
func (ctl *SelectionController) SelectProduct(c *gin.Context) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}
	ctl.selection.SelectProduct(req.ID)
	ctl.ok(c, "已选中商品")
}

// SelectVariantType 选中规格类型（层级末端，无下游）
func (ctl *SelectionController) SelectVariantType(c *gin.Context) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "请求参数格式错误: " + err.Error()})
		return
	}
	ctl.selection.SelectVariantType(req.ID)
	ctl.ok(c, "已选中规格类型")
}

// Reset 清空全部选中
func (ctl *SelectionController) Reset(c *gin.Context) {
	ctl.selection.Reset()
	ctl.ok(c, "已重置选中状态")
}
