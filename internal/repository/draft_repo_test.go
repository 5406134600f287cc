package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/shuvamd5/storefront-admin/internal/model"
)

func TestDraftRepoSaveAndGet(t *testing.T) {
	repo := NewDraftRepository(setupRepoTestDB(t))
	ctx := t.Context()

	draft := &model.FormDraft{
		Resource: "product",
		TargetID: "p1",
		Payload:  datatypes.JSON(`{"product":{"title":"椅子"}}`),
		Reason:   "远端返回 500",
	}
	require.NoError(t, repo.Save(ctx, draft))

	got, err := repo.GetByTarget(ctx, "product", "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"product":{"title":"椅子"}}`, string(got.Payload))
	assert.Equal(t, "远端返回 500", got.Reason)
}

func TestDraftRepoSaveReplacesSameTarget(t *testing.T) {
	repo := NewDraftRepository(setupRepoTestDB(t))
	ctx := t.Context()

	require.NoError(t, repo.Save(ctx, &model.FormDraft{
		Resource: "product", TargetID: "p1", Payload: datatypes.JSON(`{"v":1}`),
	}))
	// 同一目标再次留底：旧草稿被替换而不是堆积
	require.NoError(t, repo.Save(ctx, &model.FormDraft{
		Resource: "product", TargetID: "p1", Payload: datatypes.JSON(`{"v":2}`),
	}))

	drafts, err := repo.ListByResource(ctx, "product")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.JSONEq(t, `{"v":2}`, string(drafts[0].Payload))
}

func TestDraftRepoGetMissingReturnsNil(t *testing.T) {
	repo := NewDraftRepository(setupRepoTestDB(t))

	got, err := repo.GetByTarget(t.Context(), "product", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftRepoDelete(t *testing.T) {
	repo := NewDraftRepository(setupRepoTestDB(t))
	ctx := t.Context()

	draft := &model.FormDraft{Resource: "tag", TargetID: "", Payload: datatypes.JSON(`{}`)}
	require.NoError(t, repo.Save(ctx, draft))
	require.NoError(t, repo.Delete(ctx, draft.ID))

	drafts, err := repo.ListByResource(ctx, "tag")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestDraftRepoDeleteOlderThan(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewDraftRepository(db)
	ctx := t.Context()

	require.NoError(t, repo.Save(ctx, &model.FormDraft{
		Resource: "tag", TargetID: "stale", Payload: datatypes.JSON(`{}`),
	}))
	require.NoError(t, repo.Save(ctx, &model.FormDraft{
		Resource: "tag", TargetID: "fresh", Payload: datatypes.JSON(`{}`),
	}))

	// 把第一条改成很旧的时间
	old := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, db.Model(&model.FormDraft{}).
		Where("target_id = ?", "stale").
		Update("updated_at", old).Error)

	n, err := repo.DeleteOlderThan(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	drafts, err := repo.ListByResource(ctx, "tag")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "fresh", drafts[0].TargetID)
}
