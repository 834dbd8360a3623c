// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reelhub/reelhub/internal/platform/middleware"
	requestutil "github.com/reelhub/reelhub/internal/platform/request"
	"github.com/reelhub/reelhub/internal/platform/respond"
	"github.com/reelhub/reelhub/pkg/pagination"
)

type Handler struct {
	service       *Service
	ownerResolver middleware.OwnerResolver
}

// NewHandler constructs a review [Handler]. The ownerResolver maps a review
// ID to its authoring user for the ownership gate on mutations.
func NewHandler(service *Service, ownerResolver middleware.OwnerResolver) *Handler {
	return &Handler{service: service, ownerResolver: ownerResolver}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listReviews)
	router.Get("/{id}", handler.getReview)

	// Author only
	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(middleware.RequireOwner("id", handler.ownerResolver))

		ownerRoute.Put("/{id}", handler.updateReview)
		ownerRoute.Delete("/{id}", handler.deleteReview)
	})
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		MovieID: request.URL.Query().Get("movie_id"),
		UserID:  request.URL.Query().Get("user_id"),
	}

	reviews, total, err := handler.service.ListReviews(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	reviewID := requestutil.ID(request, "id")

	review, err := handler.service.GetReview(request.Context(), reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

// reviewRequest defines the writable fields of a review.
type reviewRequest struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	reviewID := requestutil.ID(request, "id")

	var input reviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review := &Review{Title: input.Title, Text: input.Text, Rating: input.Rating}
	if err := handler.service.UpdateReview(request.Context(), reviewID, review); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID := requestutil.ID(request, "id")

	if err := handler.service.DeleteReview(request.Context(), reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
