// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reelhub/reelhub/internal/platform/apperr"
	"github.com/reelhub/reelhub/internal/platform/middleware"
	requestutil "github.com/reelhub/reelhub/internal/platform/request"
	"github.com/reelhub/reelhub/internal/platform/respond"
	"github.com/reelhub/reelhub/internal/platform/validate"
	"github.com/reelhub/reelhub/pkg/pagination"
)

// Handler implements the HTTP layer for user account management.
type Handler struct {
	accountService *Service
	ownerResolver  middleware.OwnerResolver
}

// NewHandler constructs a new account [Handler].
//
// The ownerResolver maps a profile ID to its owning user for the ownership
// gate on mutation endpoints.
func NewHandler(service *Service, ownerResolver middleware.OwnerResolver) *Handler {
	return &Handler{accountService: service, ownerResolver: ownerResolver}
}

// RegisterRoutes attaches the account endpoints to the users router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public profile discovery
	router.Get("/", handler.list)
	router.Get("/{id}", handler.getProfile)

	// Owner-gated mutations
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireOwner("id", handler.ownerResolver))
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.disable)
	})
}

// # Profile Endpoints

/*
GET /api/v1/users.

Description: Lists active member profiles with pagination. Password hashes
never serialize.

Response:
  - 200: []User: Page of profiles with pagination metadata
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, meta, err := handler.accountService.ListProfiles(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, meta)
}

/*
GET /api/v1/users/{id}.

Description: Retrieves profile information for a specific user.

Request:
  - id: string (UUID)

Response:
  - 200: User: Profile data
  - 404: ErrNotFound: User not found or account disabled
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID := chi.URLParam(request, "id")
	if userID == "" {
		respond.Error(writer, request, apperr.NotFound("User"))
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateRequest defines the expected JSON payload for profile updates.
type updateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

/*
PUT /api/v1/users/{id}.

Description: Applies updates to a user profile. Only the profile owner may
perform this action.

Request:
  - id: string (UUID)
  - body: updateRequest (Partial JSON)

Response:
  - 200: User: The updated profile
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 403: ErrForbidden: Requester does not own this profile
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID := chi.URLParam(request, "id")

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Name != nil {
		v.Required("name", *input.Name).MaxLen("name", *input.Name, 100)
	}
	if input.Email != nil {
		v.Email("email", *input.Email)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/v1/users/{id}.

Description: Disables a user account. Only the profile owner may perform
this action. Reviews written by the user remain in place.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Account disabled successfully
  - 403: ErrForbidden: Requester does not own this profile
*/
func (handler *Handler) disable(writer http.ResponseWriter, request *http.Request) {
	userID := chi.URLParam(request, "id")

	if err := handler.accountService.DisableAccount(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
