// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

// HTTP interface for discovery and management of the catalogue.
//
// Routing strategy:
//
//   - Public: discovery endpoints accessible to all visitors (GET /movies).
//   - Restricted: mutative endpoints requiring the Admin role (POST, PUT, DELETE).
//   - Member: review creation, open to any authenticated user.

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reelhub/reelhub/internal/core/relation"
	"github.com/reelhub/reelhub/internal/platform/middleware"
	requestutil "github.com/reelhub/reelhub/internal/platform/request"
	"github.com/reelhub/reelhub/internal/platform/respond"
	"github.com/reelhub/reelhub/pkg/pagination"
)

// Handler implements the HTTP layer for the movie catalogue.
type Handler struct {
	service     *Service
	coordinator *relation.Coordinator
}

// NewHandler constructs a movie [Handler]. The coordinator owns the cast and
// review reference writes that span multiple rows.
func NewHandler(service *Service, coordinator *relation.Coordinator) *Handler {
	return &Handler{service: service, coordinator: coordinator}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public discovery
	router.Get("/", handler.listMovies)
	router.Get("/{id}", handler.getMovie)
	router.Get("/slug/{slug}", handler.getMovieBySlug)

	// Member
	router.With(middleware.RequireAuth).Post("/{id}/reviews", handler.createReview)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createMovie)
		adminRoute.Put("/{id}", handler.updateMovie)
		adminRoute.Delete("/{id}", handler.deleteMovie)

		// Cast membership
		adminRoute.Put("/{id}/actors/{actorID}", handler.attachActor)
		adminRoute.Delete("/{id}/actors/{actorID}", handler.detachActor)
	})
}

// # Discovery Endpoints

/*
GET /api/v1/movies.

Description: Lists catalogue titles with pagination, optional title search
(q) and genre filter.

Response:
  - 200: []Movie: Page of titles with pagination metadata
*/
func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
		Genre: request.URL.Query().Get("genre"),
	}

	movies, total, err := handler.service.ListMovies(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/movies/{id}.

Request:
  - id: string (UUID)

Response:
  - 200: Movie: The hydrated title
  - 404: ErrNotFound: Movie not found
*/
func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movieID := requestutil.ID(request, "id")

	movie, err := handler.service.GetMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

/*
GET /api/v1/movies/slug/{slug}.

Description: Resolves a title by its URL identifier.

Request:
  - slug: string

Response:
  - 200: Movie: The hydrated title
  - 404: ErrNotFound: Movie not found
*/
func (handler *Handler) getMovieBySlug(writer http.ResponseWriter, request *http.Request) {
	movieSlug := requestutil.ID(request, "slug")

	movie, err := handler.service.GetMovieBySlug(request.Context(), movieSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

// # Catalogue Management

// movieRequest defines the writable fields of a movie.
type movieRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Top         int    `json:"top"`
	Genre       string `json:"genre"`
	Image       string `json:"image"`
}

func (input movieRequest) toMovie() *Movie {
	return &Movie{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Top:         input.Top,
		Genre:       input.Genre,
		Image:       input.Image,
	}
}

/*
POST /api/v1/movies.

Description: Creates a new catalogue title. The slug is derived from the
title server-side.

Request:
  - body: movieRequest

Response:
  - 201: Movie: The created title
  - 400: ErrInvalidJSON/Validation: Invalid input
  - 403: ErrForbidden: Admin role required
*/
func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input movieRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie := input.toMovie()
	if err := handler.service.CreateMovie(request.Context(), movie); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, movie)
}

/*
PUT /api/v1/movies/{id}.

Request:
  - id: string (UUID)
  - body: movieRequest

Response:
  - 200: Movie: The updated title
  - 400: ErrInvalidJSON/Validation: Invalid input
  - 403: ErrForbidden: Admin role required
  - 404: ErrNotFound: Movie not found
*/
func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	movieID := requestutil.ID(request, "id")

	var input movieRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie := input.toMovie()
	if err := handler.service.UpdateMovie(request.Context(), movieID, movie); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

/*
DELETE /api/v1/movies/{id}.

Description: Retires a title. Reviews of the movie and cast references held
by actors are intentionally left in place.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Movie retired
  - 403: ErrForbidden: Admin role required
  - 404: ErrNotFound: Movie not found
*/
func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	movieID := requestutil.ID(request, "id")

	if err := handler.service.DeleteMovie(request.Context(), movieID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Cast & Reviews

/*
PUT /api/v1/movies/{id}/actors/{actorID}.

Description: Adds an actor to the movie's cast on both the movie and actor
rows. Repeating the call appends duplicate references.

Request:
  - id: string (Movie UUID)
  - actorID: string (Actor UUID)

Response:
  - 200: Message: Cast updated
  - 403: ErrForbidden: Admin role required
  - 404: ErrNotFound: Movie or actor not found
  - 500: IntegrityPartialFailure: Only one side was written
*/
func (handler *Handler) attachActor(writer http.ResponseWriter, request *http.Request) {
	movieID := requestutil.ID(request, "id")
	actorID := requestutil.ID(request, "actorID")

	if err := handler.coordinator.AttachActor(request.Context(), movieID, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldMessage: "Actor added to movie"})
}

/*
DELETE /api/v1/movies/{id}/actors/{actorID}.

Description: Removes every occurrence of the actor from the movie's cast on
both sides.

Request:
  - id: string (Movie UUID)
  - actorID: string (Actor UUID)

Response:
  - 204: No Content: Cast updated
  - 403: ErrForbidden: Admin role required
  - 404: ErrNotFound: Movie or actor not found
  - 500: IntegrityPartialFailure: Only one side was written
*/
func (handler *Handler) detachActor(writer http.ResponseWriter, request *http.Request) {
	movieID := requestutil.ID(request, "id")
	actorID := requestutil.ID(request, "actorID")

	if err := handler.coordinator.DetachActor(request.Context(), movieID, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/movies/{id}/reviews.

Description: Creates a review of the movie authored by the authenticated
user and fans the reference out to the author and movie rows.

Request:
  - id: string (Movie UUID)
  - body: { title, text, rating }

Response:
  - 201: Review: The persisted review
  - 400: ErrInvalidJSON/Validation: Invalid input
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Movie not found
  - 500: IntegrityPartialFailure: Review persisted but a reference write failed
*/
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	movieID := requestutil.ID(request, "id")

	principal, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Title  string `json:"title"`
		Text   string `json:"text"`
		Rating int    `json:"rating"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.coordinator.CreateReview(request.Context(), relation.CreateReviewInput{
		Title:   input.Title,
		Text:    input.Text,
		Rating:  input.Rating,
		UserID:  principal.UserID,
		MovieID: movieID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}
