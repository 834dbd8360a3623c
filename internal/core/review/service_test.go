// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package review

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/platform/apperr"
)

type fakeRepository struct {
	reviews map[string]*Review
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{reviews: make(map[string]*Review)}
}

func (f *fakeRepository) ListReviews(_ context.Context, filter Filter, limit, offset int) ([]*Review, int, error) {
	var matched []*Review
	for _, r := range f.reviews {
		if filter.MovieID != "" && r.MovieID != filter.MovieID {
			continue
		}
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		matched = append(matched, r)
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) GetReview(_ context.Context, id string) (*Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	return r, nil
}

func (f *fakeRepository) CreateReview(_ context.Context, r *Review) error {
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeRepository) UpdateReview(_ context.Context, r *Review) error {
	if _, ok := f.reviews[r.ID]; !ok {
		return apperr.NotFound("Review")
	}
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeRepository) DeleteReview(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return apperr.NotFound("Review")
	}
	delete(f.reviews, id)
	return nil
}

func newFixture() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestValidateContent(t *testing.T) {
	testCases := []struct {
		name    string
		title   string
		text    string
		rating  int
		wantErr bool
	}{
		{"valid", "Great movie", "Loved every minute.", 5, false},
		{"rating floor", "Awful", "Walked out halfway.", 1, false},
		{"rating zero", "Bad rating", "Some text", 0, true},
		{"rating above max", "Too enthusiastic", "Some text", 6, true},
		{"missing title", "", "Some text", 3, true},
		{"missing text", "Title only", "", 3, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidateContent(testCase.title, testCase.text, testCase.rating)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateReview_RejectsInvalidRating(t *testing.T) {
	service, repo := newFixture()
	repo.reviews["r1"] = &Review{ID: "r1", Title: "Old", Text: "Old text", Rating: 3}

	err := service.UpdateReview(context.Background(), "r1", &Review{Title: "New", Text: "New text", Rating: 9})

	require.Error(t, err)
	assert.Equal(t, "Old", repo.reviews["r1"].Title, "invalid update must not persist")
}

func TestUpdateReview_UnknownID(t *testing.T) {
	service, _ := newFixture()

	err := service.UpdateReview(context.Background(), "ghost", &Review{Title: "T", Text: "Some text", Rating: 3})

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteReview_RemovesOnlyTheReviewRow(t *testing.T) {
	service, repo := newFixture()
	repo.reviews["r1"] = &Review{ID: "r1", Title: "T", Text: "Some text", Rating: 3, UserID: "u1", MovieID: "m1"}

	require.NoError(t, service.DeleteReview(context.Background(), "r1"))
	assert.Empty(t, repo.reviews)

	err := service.DeleteReview(context.Background(), "r1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestListReviews_Filters(t *testing.T) {
	service, repo := newFixture()
	repo.reviews["r1"] = &Review{ID: "r1", MovieID: "m1", UserID: "u1", Rating: 4}
	repo.reviews["r2"] = &Review{ID: "r2", MovieID: "m1", UserID: "u2", Rating: 2}
	repo.reviews["r3"] = &Review{ID: "r3", MovieID: "m2", UserID: "u1", Rating: 5}

	byMovie, total, err := service.ListReviews(context.Background(), Filter{MovieID: "m1"}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, byMovie, 2)
	assert.Equal(t, 2, total)

	byUser, _, err := service.ListReviews(context.Background(), Filter{UserID: "u1"}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	both, _, err := service.ListReviews(context.Background(), Filter{MovieID: "m1", UserID: "u1"}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, both, 1)
}
