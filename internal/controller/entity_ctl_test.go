package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shuvamd5/storefront-admin/internal/api/dto"
	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/repository"
	"github.com/shuvamd5/storefront-admin/internal/service"
	"github.com/shuvamd5/storefront-admin/internal/store"
)

// ==================== 测试辅助 ====================

type noTokens struct{}

func (noTokens) Token() string { return "" }

type entityCtlFixture struct {
	router *gin.Engine
	drafts *service.DraftService
	store  *store.Store[model.Tag, model.TagPayload]

	// 编辑/删除成功后回调收到的 ID
	mutated []model.EntityID

	// 假远端行为开关
	failCreate bool
	failDelete bool
}

// setupEntityCtl 假远端 + 真实 store/controller 的完整链路
func setupEntityCtl(t *testing.T) *entityCtlFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fx := &entityCtlFixture{}

	// 假远端
	backend := gin.New()
	backend.GET("/tag/list", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"responseCode": "00",
			"datas":        []model.Tag{{ID: "t1", Tag: "hot"}, {ID: "t2", Tag: "new"}},
		})
	})
	backend.POST("/tag/create", func(c *gin.Context) {
		if fx.failCreate {
			c.String(http.StatusInternalServerError, "boom")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"responseCode": "00",
			"data":         model.Tag{ID: "t3", Tag: "sale"},
		})
	})
	backend.POST("/tag/:id/edit", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"responseCode": "00",
			"data":         model.Tag{ID: model.EntityID(c.Param("id")), Tag: "edited"},
		})
	})
	backend.POST("/tag/:id/delete", func(c *gin.Context) {
		if fx.failDelete {
			c.String(http.StatusInternalServerError, "boom")
			return
		}
		c.JSON(http.StatusOK, gin.H{"responseCode": "00"})
	})
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	// 本地草稿库
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&model.FormDraft{}))
	fx.drafts = service.NewDraftService(repository.NewDraftRepository(db))

	gw := gateway.NewClient(gateway.Config{BaseURL: srv.URL}, noTokens{})
	res := gateway.NewResource[model.Tag, model.TagPayload](gw, "tag")
	fx.store = store.New[model.Tag, model.TagPayload]("tag", res)

	ctl := NewEntityController(fx.store, fx.drafts,
		WithAfterMutate(func(id model.EntityID) { fx.mutated = append(fx.mutated, id) }))

	r := gin.New()
	grp := r.Group("/api/tags")
	{
		grp.GET("", ctl.List)
		grp.GET("/state", ctl.State)
		grp.GET("/:id", ctl.Get)
		grp.POST("", ctl.Create)
		grp.PUT("/:id", ctl.Update)
		grp.DELETE("/:id", ctl.Delete)
	}
	fx.router = r
	return fx
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 用例 ====================

func TestListEndpointReturnsSnapshot(t *testing.T) {
	fx := setupEntityCtl(t)

	w := doJSON(fx.router, http.MethodGet, "/api/tags", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.False(t, resp.Loading)
	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Data, 2)
}

func TestCreateEndpointAppends(t *testing.T) {
	fx := setupEntityCtl(t)
	doJSON(fx.router, http.MethodGet, "/api/tags", nil)

	w := doJSON(fx.router, http.MethodPost, "/api/tags", model.TagPayload{TagName: "sale"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, fx.store.Len())
}

func TestCreateFailureKeepsDraft(t *testing.T) {
	fx := setupEntityCtl(t)
	doJSON(fx.router, http.MethodGet, "/api/tags", nil)
	fx.failCreate = true

	w := doJSON(fx.router, http.MethodPost, "/api/tags", model.TagPayload{TagName: "sale"})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// 集合没动，表单进了草稿
	assert.Equal(t, 2, fx.store.Len())
	drafts, err := fx.drafts.List(t.Context(), "tag")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Contains(t, string(drafts[0].Payload), "sale")
}

func TestDeleteEndpointRemoves(t *testing.T) {
	fx := setupEntityCtl(t)
	doJSON(fx.router, http.MethodGet, "/api/tags", nil)

	w := doJSON(fx.router, http.MethodDelete, "/api/tags/t1", model.DeletePayload{VoidRemarks: "录入错误"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fx.store.Len())
}

func TestAfterMutateHookFiresOnEditAndDelete(t *testing.T) {
	fx := setupEntityCtl(t)
	doJSON(fx.router, http.MethodGet, "/api/tags", nil)

	w := doJSON(fx.router, http.MethodPut, "/api/tags/t1", model.TagPayload{TagName: "edited"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(fx.router, http.MethodDelete, "/api/tags/t2", model.DeletePayload{VoidRemarks: "录入错误"})
	require.Equal(t, http.StatusOK, w.Code)

	// 订单控制器靠这个回调作废行项目缓存，编辑和删除成功都要触发
	assert.Equal(t, []model.EntityID{"t1", "t2"}, fx.mutated)
}

func TestAfterMutateHookSkippedOnFailure(t *testing.T) {
	fx := setupEntityCtl(t)
	doJSON(fx.router, http.MethodGet, "/api/tags", nil)
	fx.failDelete = true

	w := doJSON(fx.router, http.MethodDelete, "/api/tags/t1", model.DeletePayload{VoidRemarks: "x"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, fx.mutated)
}

func TestGetEndpoint(t *testing.T) {
	fx := setupEntityCtl(t)
	doJSON(fx.router, http.MethodGet, "/api/tags", nil)

	w := doJSON(fx.router, http.MethodGet, "/api/tags/t1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(fx.router, http.MethodGet, "/api/tags/none", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBadPayloadRejected(t *testing.T) {
	fx := setupEntityCtl(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tags", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
