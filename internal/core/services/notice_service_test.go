package services

import (
	"testing"

	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeList_PublishedImportantFirst(t *testing.T) {
	env := newTestEnv(t)

	create := func(input CreateNoticeInput) string {
		notice, err := env.notices.Create(env.ctx, "admin", &input)
		require.NoError(t, err)
		return notice.ID
	}

	older := create(CreateNoticeInput{Category: "system", Title: "Maintenance window", Content: "Sunday night"})
	important := create(CreateNoticeInput{Category: "policy", Title: "Terms updated", Content: "Read them", IsImportant: true})
	newer := create(CreateNoticeInput{Category: "feature", Title: "Certificates", Content: "Now downloadable"})
	create(CreateNoticeInput{Category: "feature", Title: "Draft", Content: "hidden", Draft: true})
	create(CreateNoticeInput{Category: "fee", Title: "Future", Content: "later", PublishAt: "2030-01-01T00:00:00Z"})

	notices, total, err := env.notices.List(env.ctx, &ListNoticesInput{Params: pagination.New(1, 10)})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, notices, 3)
	assert.Equal(t, []string{important, newer, older}, []string{notices[0].ID, notices[1].ID, notices[2].ID})

	features, total, err := env.notices.List(env.ctx, &ListNoticesInput{Category: "feature"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, newer, features[0].ID)

	found, _, err := env.notices.List(env.ctx, &ListNoticesInput{Search: "SUNDAY"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, older, found[0].ID)

	_, _, err = env.notices.List(env.ctx, &ListNoticesInput{Category: "gossip"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNoticeGet_CountsViews(t *testing.T) {
	env := newTestEnv(t)

	notice, err := env.notices.Create(env.ctx, "admin", &CreateNoticeInput{Category: "system", Title: "Hello", Content: "World"})
	require.NoError(t, err)

	got, err := env.notices.Get(env.ctx, notice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.ViewCount)

	got, err = env.notices.Get(env.ctx, notice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ViewCount)
}

func TestNoticeGet_HidesDrafts(t *testing.T) {
	env := newTestEnv(t)

	draft, err := env.notices.Create(env.ctx, "admin", &CreateNoticeInput{Category: "system", Title: "Soon", Content: "x", Draft: true})
	require.NoError(t, err)

	_, err = env.notices.Get(env.ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrNoticeNotFound)
}

func TestNoticeCreate_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notices.Create(env.ctx, "admin", &CreateNoticeInput{Category: "gossip", PublishAt: "tomorrow"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ElementsMatch(t, []string{"category", "title", "content", "publish_at"}, fieldNames(err))
}
