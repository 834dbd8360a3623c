// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package relation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/core/review"
	"github.com/reelhub/reelhub/internal/platform/apperr"
)

// # Test Fakes
//
// The fakes model the reference arrays as plain slices with append and
// remove-all semantics, the same behavior the Postgres stores implement
// with array_append and array_remove.

type fakeMovieStore struct {
	actorIDs     map[string][]string
	reviewIDs    map[string][]string
	pushActorErr error
	pullActorErr error
	pushRevErr   error
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{
		actorIDs:  map[string][]string{},
		reviewIDs: map[string][]string{},
	}
}

func (f *fakeMovieStore) PushActorID(_ context.Context, movieID, actorID string) error {
	if f.pushActorErr != nil {
		return f.pushActorErr
	}
	f.actorIDs[movieID] = append(f.actorIDs[movieID], actorID)
	return nil
}

func (f *fakeMovieStore) PullActorID(_ context.Context, movieID, actorID string) error {
	if f.pullActorErr != nil {
		return f.pullActorErr
	}
	f.actorIDs[movieID] = removeAll(f.actorIDs[movieID], actorID)
	return nil
}

func (f *fakeMovieStore) PushReviewID(_ context.Context, movieID, reviewID string) error {
	if f.pushRevErr != nil {
		return f.pushRevErr
	}
	f.reviewIDs[movieID] = append(f.reviewIDs[movieID], reviewID)
	return nil
}

type fakeActorStore struct {
	movieIDs map[string][]string
	pushErr  error
	pullErr  error
}

func newFakeActorStore() *fakeActorStore {
	return &fakeActorStore{movieIDs: map[string][]string{}}
}

func (f *fakeActorStore) PushMovieID(_ context.Context, actorID, movieID string) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.movieIDs[actorID] = append(f.movieIDs[actorID], movieID)
	return nil
}

func (f *fakeActorStore) PullMovieID(_ context.Context, actorID, movieID string) error {
	if f.pullErr != nil {
		return f.pullErr
	}
	f.movieIDs[actorID] = removeAll(f.movieIDs[actorID], movieID)
	return nil
}

type fakeReviewStore struct {
	created   []*review.Review
	createErr error
}

func (f *fakeReviewStore) CreateReview(_ context.Context, r *review.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, r)
	return nil
}

type fakeUserStore struct {
	reviewIDs map[string][]string
	pushErr   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{reviewIDs: map[string][]string{}}
}

func (f *fakeUserStore) PushReviewID(_ context.Context, userID, reviewID string) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.reviewIDs[userID] = append(f.reviewIDs[userID], reviewID)
	return nil
}

func removeAll(list []string, target string) []string {
	out := list[:0]
	for _, item := range list {
		if item != target {
			out = append(out, item)
		}
	}
	return out
}

type fixture struct {
	coordinator *Coordinator
	movies      *fakeMovieStore
	actors      *fakeActorStore
	reviews     *fakeReviewStore
	users       *fakeUserStore
}

func newFixture() *fixture {
	movies := newFakeMovieStore()
	actors := newFakeActorStore()
	reviews := &fakeReviewStore{}
	users := newFakeUserStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		coordinator: NewCoordinator(movies, actors, reviews, users, logger),
		movies:      movies,
		actors:      actors,
		reviews:     reviews,
		users:       users,
	}
}

// # Cast Membership

func TestCoordinator_AttachActor(t *testing.T) {
	t.Run("links_both_sides", func(t *testing.T) {
		f := newFixture()

		err := f.coordinator.AttachActor(context.Background(), "m1", "a1")
		require.NoError(t, err)

		assert.Equal(t, []string{"a1"}, f.movies.actorIDs["m1"])
		assert.Equal(t, []string{"m1"}, f.actors.movieIDs["a1"])
	})

	t.Run("repeat_attach_accumulates_duplicates", func(t *testing.T) {
		f := newFixture()

		require.NoError(t, f.coordinator.AttachActor(context.Background(), "m1", "a1"))
		require.NoError(t, f.coordinator.AttachActor(context.Background(), "m1", "a1"))

		assert.Equal(t, []string{"a1", "a1"}, f.movies.actorIDs["m1"])
		assert.Equal(t, []string{"m1", "m1"}, f.actors.movieIDs["a1"])
	})

	t.Run("first_write_failure_leaves_no_trace", func(t *testing.T) {
		f := newFixture()
		f.movies.pushActorErr = apperr.NotFound("Movie")

		err := f.coordinator.AttachActor(context.Background(), "missing", "a1")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))

		assert.Empty(t, f.movies.actorIDs["missing"])
		assert.Empty(t, f.actors.movieIDs["a1"])
	})

	t.Run("second_write_failure_keeps_first_and_reports_partial", func(t *testing.T) {
		f := newFixture()
		f.actors.pushErr = errors.New("connection reset")

		err := f.coordinator.AttachActor(context.Background(), "m1", "a1")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "INTEGRITY_PARTIAL_FAILURE", ae.Code)

		// The movie side committed and stays committed
		assert.Equal(t, []string{"a1"}, f.movies.actorIDs["m1"])
		assert.Empty(t, f.actors.movieIDs["a1"])
	})
}

func TestCoordinator_DetachActor(t *testing.T) {
	t.Run("removes_every_occurrence_on_both_sides", func(t *testing.T) {
		f := newFixture()
		f.movies.actorIDs["m1"] = []string{"a1", "a2", "a1"}
		f.actors.movieIDs["a1"] = []string{"m1", "m1", "m2"}

		err := f.coordinator.DetachActor(context.Background(), "m1", "a1")
		require.NoError(t, err)

		assert.Equal(t, []string{"a2"}, f.movies.actorIDs["m1"])
		assert.Equal(t, []string{"m2"}, f.actors.movieIDs["a1"])
	})

	t.Run("detach_of_unlinked_pair_is_a_noop", func(t *testing.T) {
		f := newFixture()
		f.movies.actorIDs["m1"] = []string{"a2"}

		err := f.coordinator.DetachActor(context.Background(), "m1", "a1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a2"}, f.movies.actorIDs["m1"])
	})

	t.Run("second_write_failure_reports_partial", func(t *testing.T) {
		f := newFixture()
		f.movies.actorIDs["m1"] = []string{"a1"}
		f.actors.movieIDs["a1"] = []string{"m1"}
		f.actors.pullErr = errors.New("connection reset")

		err := f.coordinator.DetachActor(context.Background(), "m1", "a1")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "INTEGRITY_PARTIAL_FAILURE", ae.Code)

		// Movie side pulled, actor side untouched
		assert.Empty(t, f.movies.actorIDs["m1"])
		assert.Equal(t, []string{"m1"}, f.actors.movieIDs["a1"])
	})
}

// # Review Creation

func TestCoordinator_CreateReview(t *testing.T) {
	validInput := CreateReviewInput{
		Title:   "A triumph",
		Text:    "Best thing this year.",
		Rating:  5,
		UserID:  "u1",
		MovieID: "m1",
	}

	t.Run("writes_review_then_user_then_movie", func(t *testing.T) {
		f := newFixture()

		entry, err := f.coordinator.CreateReview(context.Background(), validInput)
		require.NoError(t, err)
		require.NotNil(t, entry)

		require.Len(t, f.reviews.created, 1)
		assert.Equal(t, entry.ID, f.reviews.created[0].ID)
		assert.Equal(t, []string{entry.ID}, f.users.reviewIDs["u1"])
		assert.Equal(t, []string{entry.ID}, f.movies.reviewIDs["m1"])
	})

	t.Run("invalid_rating_writes_nothing", func(t *testing.T) {
		f := newFixture()
		input := validInput
		input.Rating = 6

		entry, err := f.coordinator.CreateReview(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, entry)
		assert.Empty(t, f.reviews.created)
		assert.Empty(t, f.users.reviewIDs["u1"])
		assert.Empty(t, f.movies.reviewIDs["m1"])
	})

	t.Run("review_row_failure_writes_nothing", func(t *testing.T) {
		f := newFixture()
		f.reviews.createErr = errors.New("disk full")

		entry, err := f.coordinator.CreateReview(context.Background(), validInput)
		require.Error(t, err)
		assert.Nil(t, entry)
		assert.Empty(t, f.users.reviewIDs["u1"])
		assert.Empty(t, f.movies.reviewIDs["m1"])
	})

	t.Run("user_link_failure_keeps_review_row", func(t *testing.T) {
		f := newFixture()
		f.users.pushErr = errors.New("connection reset")

		entry, err := f.coordinator.CreateReview(context.Background(), validInput)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "INTEGRITY_PARTIAL_FAILURE", ae.Code)

		// The review row survives; neither reference array was written
		require.NotNil(t, entry)
		require.Len(t, f.reviews.created, 1)
		assert.Empty(t, f.users.reviewIDs["u1"])
		assert.Empty(t, f.movies.reviewIDs["m1"])
	})

	t.Run("movie_link_failure_keeps_review_and_user_link", func(t *testing.T) {
		f := newFixture()
		f.movies.pushRevErr = errors.New("connection reset")

		entry, err := f.coordinator.CreateReview(context.Background(), validInput)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "INTEGRITY_PARTIAL_FAILURE", ae.Code)

		require.NotNil(t, entry)
		require.Len(t, f.reviews.created, 1)
		assert.Equal(t, []string{entry.ID}, f.users.reviewIDs["u1"])
		assert.Empty(t, f.movies.reviewIDs["m1"])
	})
}
