// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package movie

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reelhub/reelhub/internal/platform/validate"
	"github.com/reelhub/reelhub/pkg/slug"
	"github.com/reelhub/reelhub/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for the movie catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListMovies returns a filtered, paginated slice of the catalogue.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Movie: Page of titles
  - int: Total matching count
  - error: Retrieval failures
*/
func (service *Service) ListMovies(context context.Context, filter Filter, limit, offset int) ([]*Movie, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetMovie retrieves a single title by primary key.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Movie: The hydrated entity
  - error: Not found or execution failures
*/
func (service *Service) GetMovie(context context.Context, id string) (*Movie, error) {
	return service.repo.FindByID(context, id)
}

/*
GetMovieBySlug retrieves a single title by its URL slug.

Parameters:
  - context: context.Context
  - movieSlug: string

Returns:
  - *Movie: The hydrated entity
  - error: Not found or execution failures
*/
func (service *Service) GetMovieBySlug(context context.Context, movieSlug string) (*Movie, error) {
	return service.repo.FindBySlug(context, movieSlug)
}

/*
CreateMovie validates and persists a new catalogue title.

Description: Assigns a time-sortable ID and derives the URL slug from the
title before persisting to the repository.

Parameters:
  - context: context.Context
  - movie: *Movie

Returns:
  - error: Validation, conflict, or storage failures
*/
func (service *Service) CreateMovie(context context.Context, movie *Movie) error {
	if err := validateMovie(movie); err != nil {
		return err
	}

	movie.ID = uuid.New()
	movie.Slug = slug.From(movie.Title)

	if err := service.repo.Create(context, movie); err != nil {
		return fmt.Errorf("movie_service_create_failed: %w", err)
	}

	service.logger.Info("movie_created",
		slog.String("movie_id", movie.ID),
		slog.String("slug", movie.Slug),
	)
	return nil
}

/*
UpdateMovie validates and persists changes to an existing title.

Description: The slug is re-derived whenever the title changes so the URL
identifier always tracks the display title.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - movie: *Movie

Returns:
  - error: Validation or storage failures
*/
func (service *Service) UpdateMovie(context context.Context, id string, movie *Movie) error {
	movie.ID = id
	if err := validateMovie(movie); err != nil {
		return err
	}

	movie.Slug = slug.From(movie.Title)

	if err := service.repo.Update(context, movie); err != nil {
		return err
	}

	service.logger.Info("movie_updated", slog.String("movie_id", movie.ID))
	return nil
}

/*
DeleteMovie retires a title from the catalogue.

Description: The movie row is flagged as retired. Reviews of the movie stay
in place and actor filmographies keep their movieids references; dangling
references are an accepted property of the reference-array model.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not found or execution failures
*/
func (service *Service) DeleteMovie(context context.Context, id string) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Warn("movie_deleted", slog.String("movie_id", id))
	return nil
}

func validateMovie(movie *Movie) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, movie.Title).MaxLen(FieldTitle, movie.Title, 200).
		Required(FieldDescription, movie.Description).MaxLen(FieldDescription, movie.Description, 2000).
		Custom(FieldDuration, movie.Duration <= 0, "must be a positive number of minutes").
		Range(FieldTop, movie.Top, MinTop, MaxTop).
		Required(FieldGenre, movie.Genre)

	if movie.Image != "" {
		validator.URL(FieldImage, movie.Image)
	}

	return validator.Err()
}
