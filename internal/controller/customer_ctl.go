package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
)

// CustomerController 客户档案直查（不进本地 store）
type CustomerController struct {
	gateway *gateway.Client
}

func NewCustomerController(gw *gateway.Client) *CustomerController {
	return &CustomerController{gateway: gw}
}

// Profile 客户档案详情
// @Summary 查询客户档案
// @Tags Customer
// @Param id path string true "客户ID"
// @Success 200 {object} map[string]any
// @Router /api/customers/{id}/profile [get]
func (ctl *CustomerController) Profile(c *gin.Context) {
	customerID := model.EntityID(c.Param("id"))
	if customerID == "" || customerID.IsPlaceholder() {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "客户 ID 无效"})
		return
	}

	profile, err := ctl.gateway.CustomerProfile(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "查询成功", "data": profile})
}
