package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shuvamd5/storefront-admin/internal/model"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	require.NoError(t, db.AutoMigrate(&model.SessionEntry{}, &model.FormDraft{}))
	return db
}

func TestSessionRepoSetGet(t *testing.T) {
	repo := NewSessionRepository(setupRepoTestDB(t))
	ctx := t.Context()

	require.NoError(t, repo.Set(ctx, model.SessionKeyToken, "tok-1"))

	got, err := repo.Get(ctx, model.SessionKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
}

func TestSessionRepoGetMissingReturnsEmpty(t *testing.T) {
	repo := NewSessionRepository(setupRepoTestDB(t))

	// 缺失的键按空值处理，不算错误
	got, err := repo.Get(t.Context(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSessionRepoSetOverwrites(t *testing.T) {
	repo := NewSessionRepository(setupRepoTestDB(t))
	ctx := t.Context()

	require.NoError(t, repo.Set(ctx, model.SessionKeyToken, "old"))
	require.NoError(t, repo.Set(ctx, model.SessionKeyToken, "new"))

	got, err := repo.Get(ctx, model.SessionKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestSessionRepoDelete(t *testing.T) {
	repo := NewSessionRepository(setupRepoTestDB(t))
	ctx := t.Context()

	require.NoError(t, repo.Set(ctx, model.SessionKeyToken, "tok"))
	require.NoError(t, repo.Set(ctx, model.SessionKeyStoreID, "store"))
	require.NoError(t, repo.Delete(ctx, model.SessionKeyToken, model.SessionKeyStoreID))

	got, err := repo.Get(ctx, model.SessionKeyToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}
