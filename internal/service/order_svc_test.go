package service

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
)

type orderTestTokens struct{}

func (orderTestTokens) Token() string { return "" }

func setupOrderTest(t *testing.T) (*OrderService, *atomic.Int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var hits atomic.Int64
	r := gin.New()
	r.GET("/order/:id/order-item/detail", func(c *gin.Context) {
		hits.Add(1)
		c.JSON(http.StatusOK, gin.H{
			"responseCode": "00",
			"data":         []model.OrderItem{{ID: "oi1", Quantity: 2}},
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	gw := gateway.NewClient(gateway.Config{BaseURL: srv.URL}, orderTestTokens{})
	return NewOrderService(gw), &hits
}

func TestOrderItemsCached(t *testing.T) {
	svc, hits := setupOrderTest(t)
	ctx := t.Context()

	items, err := svc.Items(ctx, "o-cache-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// 第二次命中缓存，不打远端
	_, err = svc.Items(ctx, "o-cache-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())
}

func TestInvalidateItemsForcesRefetch(t *testing.T) {
	svc, hits := setupOrderTest(t)
	ctx := t.Context()

	_, err := svc.Items(ctx, "o-cache-2")
	require.NoError(t, err)

	// 订单被改动后缓存作废，下一次重新拉取
	svc.InvalidateItems("o-cache-2")

	_, err = svc.Items(ctx, "o-cache-2")
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load())
}

func TestOrderItemsRejectsEmptyAndPlaceholderId(t *testing.T) {
	svc, hits := setupOrderTest(t)

	_, err := svc.Items(t.Context(), "")
	require.Error(t, err)

	_, err = svc.Items(t.Context(), model.NewPlaceholderID())
	require.Error(t, err)
	assert.EqualValues(t, 0, hits.Load())
}
