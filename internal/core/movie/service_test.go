// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package movie

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/platform/apperr"
)

// # Test Fakes

type fakeRepository struct {
	movies  map[string]*Movie
	deleted []string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{movies: map[string]*Movie{}}
}

func (f *fakeRepository) List(_ context.Context, _ Filter, _, _ int) ([]*Movie, int, error) {
	out := make([]*Movie, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, len(out), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Movie, error) {
	if m, ok := f.movies[id]; ok {
		return m, nil
	}
	return nil, apperr.NotFound("Movie")
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Movie, error) {
	for _, m := range f.movies {
		if m.Slug == slug {
			return m, nil
		}
	}
	return nil, apperr.NotFound("Movie")
}

func (f *fakeRepository) Create(_ context.Context, m *Movie) error {
	f.movies[m.ID] = m
	return nil
}

func (f *fakeRepository) Update(_ context.Context, m *Movie) error {
	if _, ok := f.movies[m.ID]; !ok {
		return apperr.NotFound("Movie")
	}
	f.movies[m.ID] = m
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := f.movies[id]; !ok {
		return apperr.NotFound("Movie")
	}
	delete(f.movies, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepository) PushActorID(_ context.Context, movieID, actorID string) error {
	m, ok := f.movies[movieID]
	if !ok {
		return apperr.NotFound("Movie")
	}
	m.ActorIDs = append(m.ActorIDs, actorID)
	return nil
}

func (f *fakeRepository) PullActorID(_ context.Context, movieID, actorID string) error {
	m, ok := f.movies[movieID]
	if !ok {
		return apperr.NotFound("Movie")
	}
	kept := m.ActorIDs[:0]
	for _, id := range m.ActorIDs {
		if id != actorID {
			kept = append(kept, id)
		}
	}
	m.ActorIDs = kept
	return nil
}

func (f *fakeRepository) PushReviewID(_ context.Context, movieID, reviewID string) error {
	m, ok := f.movies[movieID]
	if !ok {
		return apperr.NotFound("Movie")
	}
	m.ReviewIDs = append(m.ReviewIDs, reviewID)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

// # Creation & Slugs

func TestService_CreateMovie(t *testing.T) {
	t.Run("derives_slug_from_title", func(t *testing.T) {
		service, repo := newTestService()

		movie := &Movie{
			Title:       "Amélie: The Director's Cut",
			Description: "A whimsical Paris story.",
			Duration:    122,
			Top:         9,
			Genre:       "romance",
		}

		err := service.CreateMovie(context.Background(), movie)
		require.NoError(t, err)

		assert.NotEmpty(t, movie.ID)
		assert.Equal(t, "amelie-the-director-s-cut", movie.Slug)
		assert.Contains(t, repo.movies, movie.ID)
	})

	tests := []struct {
		name  string
		movie Movie
		field string
	}{
		{"missing_title", Movie{Description: "d", Duration: 90, Genre: "drama"}, FieldTitle},
		{"zero_duration", Movie{Title: "t", Description: "d", Genre: "drama"}, FieldDuration},
		{"top_out_of_range", Movie{Title: "t", Description: "d", Duration: 90, Top: 11, Genre: "drama"}, FieldTop},
		{"missing_genre", Movie{Title: "t", Description: "d", Duration: 90}, FieldGenre},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()

			movie := tt.movie
			err := service.CreateMovie(context.Background(), &movie)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)

			found := false
			for _, detail := range ae.Details {
				if detail.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a detail for field %q", tt.field)
			assert.Empty(t, repo.movies)
		})
	}
}

func TestService_UpdateMovie(t *testing.T) {
	service, repo := newTestService()

	original := &Movie{
		Title:       "Old Title",
		Description: "d",
		Duration:    100,
		Genre:       "drama",
	}
	require.NoError(t, service.CreateMovie(context.Background(), original))

	updated := &Movie{
		Title:       "Brand New Title",
		Description: "d",
		Duration:    100,
		Genre:       "drama",
	}
	require.NoError(t, service.UpdateMovie(context.Background(), original.ID, updated))

	// Slug tracks the new title
	assert.Equal(t, "brand-new-title", updated.Slug)
	assert.Equal(t, "Brand New Title", repo.movies[original.ID].Title)
}

// # Deletion

func TestService_DeleteMovie(t *testing.T) {
	t.Run("retires_only_the_movie_row", func(t *testing.T) {
		service, repo := newTestService()

		movie := &Movie{Title: "Doomed", Description: "d", Duration: 90, Genre: "horror"}
		require.NoError(t, service.CreateMovie(context.Background(), movie))
		require.NoError(t, repo.PushActorID(context.Background(), movie.ID, "a1"))
		require.NoError(t, repo.PushReviewID(context.Background(), movie.ID, "r1"))

		err := service.DeleteMovie(context.Background(), movie.ID)
		require.NoError(t, err)

		// Exactly one targeted write; nothing else is touched
		assert.Equal(t, []string{movie.ID}, repo.deleted)
	})

	t.Run("missing_movie", func(t *testing.T) {
		service, _ := newTestService()

		err := service.DeleteMovie(context.Background(), "nope")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}
