// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package actor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reelhub/reelhub/internal/platform/middleware"
	requestutil "github.com/reelhub/reelhub/internal/platform/request"
	"github.com/reelhub/reelhub/internal/platform/respond"
	"github.com/reelhub/reelhub/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listActors)
	router.Get("/{id}", handler.getActor)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createActor)
		adminRoute.Put("/{id}", handler.updateActor)
		adminRoute.Delete("/{id}", handler.deleteActor)
	})
}

func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	actors, total, err := handler.service.ListActors(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, actors, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getActor(writer http.ResponseWriter, request *http.Request) {
	actorID := requestutil.ID(request, "id")

	actor, err := handler.service.GetActor(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, actor)
}

func (handler *Handler) createActor(writer http.ResponseWriter, request *http.Request) {
	var input Actor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateActor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateActor(writer http.ResponseWriter, request *http.Request) {
	actorID := requestutil.ID(request, "id")

	var input Actor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateActor(request.Context(), actorID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteActor(writer http.ResponseWriter, request *http.Request) {
	actorID := requestutil.ID(request, "id")

	if err := handler.service.DeleteActor(request.Context(), actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
