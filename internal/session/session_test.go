package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shuvamd5/storefront-admin/internal/model"
	"github.com/shuvamd5/storefront-admin/internal/repository"
)

func setupSessionTest(t *testing.T) (*Session, repository.SessionRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&model.SessionEntry{}))

	repo := repository.NewSessionRepository(db)
	return New(repo), repo
}

func TestEstablishPersistsAndExposes(t *testing.T) {
	sess, repo := setupSessionTest(t)
	ctx := t.Context()

	require.NoError(t, sess.Establish(ctx, "tok-1", "store-1"))

	assert.Equal(t, "tok-1", sess.Token())
	assert.Equal(t, "store-1", sess.StoreID())
	assert.True(t, sess.Authenticated())

	// 落库了才能在重启后恢复
	got, err := repo.Get(ctx, model.SessionKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
}

func TestEstablishRejectsEmptyToken(t *testing.T) {
	sess, _ := setupSessionTest(t)

	err := sess.Establish(t.Context(), "", "store-1")
	require.Error(t, err)
	assert.False(t, sess.Authenticated())
}

func TestHydrateRestoresPersistedSession(t *testing.T) {
	sess, repo := setupSessionTest(t)
	ctx := t.Context()

	require.NoError(t, repo.Set(ctx, model.SessionKeyToken, "tok-old"))
	require.NoError(t, repo.Set(ctx, model.SessionKeyStoreID, "store-old"))

	require.NoError(t, sess.Hydrate(ctx))
	assert.Equal(t, "tok-old", sess.Token())
	assert.Equal(t, "store-old", sess.StoreID())
	assert.True(t, sess.Authenticated())
}

func TestHydrateWithNothingPersisted(t *testing.T) {
	sess, _ := setupSessionTest(t)

	require.NoError(t, sess.Hydrate(t.Context()))
	assert.False(t, sess.Authenticated())
}

func TestClearWipesMemoryAndStorage(t *testing.T) {
	sess, repo := setupSessionTest(t)
	ctx := t.Context()

	require.NoError(t, sess.Establish(ctx, "tok-1", "store-1"))
	require.NoError(t, sess.Clear(ctx))

	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token())

	got, err := repo.Get(ctx, model.SessionKeyToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}
