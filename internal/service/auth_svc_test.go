package service

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shuvamd5/storefront-admin/internal/gateway"
	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/repository"
	"github.com/shuvamd5/storefront-admin/internal/session"
	"github.com/shuvamd5/storefront-admin/internal/store"
)

// setupAuthTest 起一个假远端，统计命中次数
func setupAuthTest(t *testing.T) (*AuthService, *session.Session, *atomic.Int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var hits atomic.Int64
	r := gin.New()
	r.POST("/login", func(c *gin.Context) {
		hits.Add(1)
		c.JSON(http.StatusOK, model.LoginResponse{Token: "srv-tok", StoreID: "store-1"})
	})
	r.POST("/register", func(c *gin.Context) {
		hits.Add(1)
		c.JSON(http.StatusOK, model.LoginResponse{Token: "srv-tok"})
	})
	r.POST("/reset-password", func(c *gin.Context) {
		hits.Add(1)
		c.JSON(http.StatusOK, gin.H{"responseCode": "00"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&model.SessionEntry{}))

	sess := session.New(repository.NewSessionRepository(db))
	gw := gateway.NewClient(gateway.Config{BaseURL: srv.URL}, sess)
	stores := store.NewStores(gw)

	return NewAuthService(gw, sess, stores), sess, &hits
}

func TestLoginEstablishesSession(t *testing.T) {
	svc, sess, _ := setupAuthTest(t)

	resp, err := svc.Login(t.Context(), model.LoginPayload{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "srv-tok", resp.Token)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "store-1", sess.StoreID())
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc, sess, hits := setupAuthTest(t)

	_, err := svc.Login(t.Context(), model.LoginPayload{Username: "admin"})
	require.Error(t, err)
	assert.False(t, sess.Authenticated())
	// 本地校验不过，不发请求
	assert.EqualValues(t, 0, hits.Load())
}

func TestRegisterRejectsPasswordMismatchBeforeDispatch(t *testing.T) {
	svc, _, hits := setupAuthTest(t)

	_, err := svc.Register(t.Context(), model.RegisterPayload{
		StoreName:       "店铺",
		UserName:        "admin",
		Password:        "a",
		ConfirmPassword: "b",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不一致")
	assert.EqualValues(t, 0, hits.Load())
}

func TestResetPasswordRejectsMismatch(t *testing.T) {
	svc, _, hits := setupAuthTest(t)

	err := svc.ResetPassword(t.Context(), model.ResetPasswordPayload{
		Password: "a", ConfirmPassword: "b", Token: "t",
	})
	require.Error(t, err)
	assert.EqualValues(t, 0, hits.Load())
}

func TestLogoutClearsSessionAndSelection(t *testing.T) {
	svc, sess, _ := setupAuthTest(t)

	_, err := svc.Login(t.Context(), model.LoginPayload{Username: "admin", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(t.Context()))
	assert.False(t, sess.Authenticated())
	assert.Empty(t, svc.stores.Selection.SelectedCategoryID())
}
