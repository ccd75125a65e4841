package services

import (
	"testing"

	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_ApproveRecordsReviewer(t *testing.T) {
	env := newTestEnv(t)
	career := env.createCareer(t, "u1", validCareer())
	_, err := env.careers.Submit(env.ctx, "u1", career.ID)
	require.NoError(t, err)

	reviewed, err := env.reviews.Review(env.ctx, "r1", career.ID, &ReviewInput{Status: "approved", Comment: " verified "})
	require.NoError(t, err)

	assert.Equal(t, string(domain.CareerApproved), reviewed.Status)
	require.NotNil(t, reviewed.ReviewerID)
	assert.Equal(t, "r1", *reviewed.ReviewerID)
	assert.NotNil(t, reviewed.ReviewedAt)
	assert.Equal(t, "verified", reviewed.ReviewComment)

	entries, err := env.activity.Recent(env.ctx, "u1", 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, domain.ActionCareerReviewed, entries[0].Action)
}

func TestReview_StatusMachine(t *testing.T) {
	cases := []struct {
		name    string
		setup   []string
		next    string
		wantErr error
	}{
		{name: "draft to under review", next: "under_review"},
		{name: "draft to approved", next: "approved", wantErr: domain.ErrInvalidState},
		{name: "submitted to under review", setup: []string{"submitted"}, next: "under_review"},
		{name: "under review back to submitted", setup: []string{"under_review"}, next: "submitted"},
		{name: "approved is terminal", setup: []string{"submitted", "approved"}, next: "rejected", wantErr: domain.ErrInvalidState},
		{name: "rejected is terminal", setup: []string{"submitted", "rejected"}, next: "submitted", wantErr: domain.ErrInvalidState},
		{name: "unknown status", next: "archived", wantErr: domain.ErrInvalidInput},
		{name: "draft is not a review outcome", setup: []string{"submitted"}, next: "draft", wantErr: domain.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			career := env.createCareer(t, "u1", validCareer())
			for _, status := range tc.setup {
				_, err := env.reviews.Review(env.ctx, "r1", career.ID, &ReviewInput{Status: status})
				require.NoError(t, err)
			}

			_, err := env.reviews.Review(env.ctx, "r1", career.ID, &ReviewInput{Status: tc.next})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReview_MissingCareer(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reviews.Review(env.ctx, "r1", "nope", &ReviewInput{Status: "approved"})
	assert.ErrorIs(t, err, domain.ErrCareerNotFound)
}

func TestReviewQueue(t *testing.T) {
	env := newTestEnv(t)

	env.createCareer(t, "u1", validCareer())
	first := env.createCareer(t, "u1", validCareer())
	second := env.createCareer(t, "u2", validCareer())
	_, err := env.careers.Submit(env.ctx, "u1", first.ID)
	require.NoError(t, err)
	_, err = env.careers.Submit(env.ctx, "u2", second.ID)
	require.NoError(t, err)
	_, err = env.reviews.Review(env.ctx, "r1", second.ID, &ReviewInput{Status: "under_review"})
	require.NoError(t, err)

	queue, total, err := env.reviews.ListQueue(env.ctx, "", pagination.New(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []string{first.ID, second.ID}, careerIDs(queue))

	underReview, total, err := env.reviews.ListQueue(env.ctx, "under_review", pagination.New(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []string{second.ID}, careerIDs(underReview))

	_, _, err = env.reviews.ListQueue(env.ctx, "bogus", pagination.New(1, 10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
