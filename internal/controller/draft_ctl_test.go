package controller

import (
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

	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/repository"
	"github.com/shuvamd5/storefront-admin/internal/service"
)

func setupDraftCtl(t *testing.T) (*gin.Engine, *service.DraftService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&model.FormDraft{}))

	drafts := service.NewDraftService(repository.NewDraftRepository(db))
	ctl := NewDraftController(drafts)

	r := gin.New()
	grp := r.Group("/api/drafts")
	{
		grp.GET("/:resource", ctl.List)
		grp.GET("/:resource/restore", ctl.Restore)
		grp.DELETE("/id/:id", ctl.Discard)
	}
	return r, drafts
}

func TestRestoreReturnsKeptPayload(t *testing.T) {
	r, drafts := setupDraftCtl(t)

	payload := model.TagPayload{TagName: "sale"}
	require.NoError(t, drafts.KeepFailed(t.Context(), "tag", "t1", payload, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/drafts/tag/restore?target=t1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.JSONEq(t, `{"tagName":"sale"}`, string(resp.Data))
}

func TestRestoreCreateDraftWithEmptyTarget(t *testing.T) {
	r, drafts := setupDraftCtl(t)

	// 新增表单的草稿 target 为空
	require.NoError(t, drafts.KeepFailed(t.Context(), "tag", "", model.TagPayload{TagName: "new"}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/drafts/tag/restore", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRestoreMissingDraftIs404(t *testing.T) {
	r, _ := setupDraftCtl(t)

	req := httptest.NewRequest(http.MethodGet, "/api/drafts/tag/restore?target=none", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
