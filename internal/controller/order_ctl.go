package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/service"
)

// ==================== 订单明细控制器 ====================

// OrderController 订单行项目明细（展开订单时按需拉取，短时缓存）
type OrderController struct {
	orders *service.OrderService
}

func NewOrderController(orders *service.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Items 某订单的行项目明细
// @Summary 查询订单行项目明细
// @Tags Order
// @Param id path string true "订单ID"
// @Success 200 {object} map[string]any
// @Router /api/orders/{id}/items [get]
func (ctl *OrderController) Items(c *gin.Context) {
	orderID := model.EntityID(c.Param("id"))

	items, err := ctl.orders.Items(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "查询成功", "data": items})
}
