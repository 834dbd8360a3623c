// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/platform/ctxutil"
	"github.com/reelhub/reelhub/internal/platform/middleware"
	"github.com/reelhub/reelhub/internal/platform/sec"
)

// fakeResolver resolves a fixed set of tokens. Unknown tokens are anonymous,
// the special "boom" token simulates an identity store outage.
type fakeResolver struct {
	principals map[string]*sec.Principal
}

func (resolver *fakeResolver) ResolveToken(_ context.Context, token string) (*sec.Principal, error) {
	if token == "boom" {
		return nil, errors.New("identity store unreachable")
	}
	return resolver.principals[token], nil
}

// fakeOwnerResolver maps resource ids to owning user ids.
type fakeOwnerResolver struct {
	owners map[string]string
	err    error
}

func (resolver *fakeOwnerResolver) ResolveOwnerID(_ context.Context, resourceID string) (string, error) {
	if resolver.err != nil {
		return "", resolver.err
	}
	return resolver.owners[resourceID], nil
}

func newResolver() *fakeResolver {
	return &fakeResolver{principals: map[string]*sec.Principal{
		"admin-token": {UserID: "user-admin", Email: "admin@reelhub.app", Role: sec.RoleAdmin},
		"guest-token": {UserID: "user-guest", Email: "guest@reelhub.app", Role: sec.RoleGuest},
	}}
}

// capture records whether the downstream handler ran and which principal it saw.
type capture struct {
	called    bool
	principal *sec.Principal
}

func (c *capture) handler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		c.called = true
		c.principal = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	}
}

/*
TestAuthenticate covers the session gate outcomes: anonymous pass-through,
malformed scheme rejection, invalid-token collapse to anonymous, and
identity resolution.
*/
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		wantStatus    int
		wantNextRun   bool
		wantPrincipal string // user id seen downstream, "" for anonymous
	}{
		{"no_header_is_anonymous", "", http.StatusOK, true, ""},
		{"malformed_scheme", "Token abc", http.StatusBadRequest, false, ""},
		{"missing_token_part", "Bearer", http.StatusBadRequest, false, ""},
		{"extra_parts", "Bearer a b", http.StatusBadRequest, false, ""},
		{"unknown_token_is_anonymous", "Bearer forged-or-expired", http.StatusOK, true, ""},
		{"store_failure", "Bearer boom", http.StatusBadRequest, false, ""},
		{"valid_token", "Bearer guest-token", http.StatusOK, true, "user-guest"},
		{"scheme_case_insensitive", "bearer admin-token", http.StatusOK, true, "user-admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downstream := &capture{}
			handler := middleware.Authenticate(newResolver())(downstream.handler())

			request := httptest.NewRequest(http.MethodGet, "/movies", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNextRun, downstream.called)

			if tt.wantPrincipal == "" {
				assert.Nil(t, downstream.principal)
			} else {
				require.NotNil(t, downstream.principal)
				assert.Equal(t, tt.wantPrincipal, downstream.principal.UserID)
			}
		})
	}
}

/*
TestRequireAuth verifies that the authentication gate blocks anonymous
requests with 401 and forwards authenticated ones.
*/
func TestRequireAuth(t *testing.T) {
	t.Run("anonymous_is_401", func(t *testing.T) {
		downstream := &capture{}
		handler := middleware.RequireAuth(downstream.handler())

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, downstream.called)
	})

	t.Run("authenticated_continues", func(t *testing.T) {
		downstream := &capture{}
		handler := middleware.RequireAuth(downstream.handler())

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.Principal{UserID: "u1", Role: sec.RoleGuest})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, downstream.called)
	})
}

/*
TestRequireAdmin verifies the role gate: it passes only an exact admin role
and yields 403 for everything else, including an absent identity.
*/
func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		principal  *sec.Principal
		wantStatus int
	}{
		{"absent_identity", nil, http.StatusForbidden},
		{"guest_role", &sec.Principal{UserID: "u1", Role: sec.RoleGuest}, http.StatusForbidden},
		{"unknown_role", &sec.Principal{UserID: "u1", Role: sec.Role("moderator")}, http.StatusForbidden},
		{"admin_role", &sec.Principal{UserID: "u1", Role: sec.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downstream := &capture{}
			handler := middleware.RequireAdmin(downstream.handler())

			request := httptest.NewRequest(http.MethodDelete, "/movies/m1", nil)
			if tt.principal != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.principal))
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, downstream.called)
		})
	}
}

/*
TestRequireAdmin_AfterExpiredToken runs the full chain: an expired/forged
token collapses to anonymous in the session gate, then the role gate yields
403.
*/
func TestRequireAdmin_AfterExpiredToken(t *testing.T) {
	downstream := &capture{}
	handler := middleware.Authenticate(newResolver())(middleware.RequireAdmin(downstream.handler()))

	request := httptest.NewRequest(http.MethodPost, "/movies", nil)
	request.Header.Set("Authorization", "Bearer expired-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, downstream.called)
}

/*
TestRequireOwner verifies the ownership gate in both directions plus its
fail-closed behavior on resolver failures.
*/
func TestRequireOwner(t *testing.T) {
	owners := &fakeOwnerResolver{owners: map[string]string{
		"review-1": "user-guest",
	}}

	tests := []struct {
		name       string
		resolver   middleware.OwnerResolver
		principal  *sec.Principal
		resourceID string
		wantStatus int
	}{
		{"owner_passes", owners, &sec.Principal{UserID: "user-guest", Role: sec.RoleGuest}, "review-1", http.StatusOK},
		{"other_user_forbidden", owners, &sec.Principal{UserID: "user-other", Role: sec.RoleGuest}, "review-1", http.StatusForbidden},
		{"admin_is_not_owner", owners, &sec.Principal{UserID: "user-admin", Role: sec.RoleAdmin}, "review-1", http.StatusForbidden},
		{"anonymous_forbidden", owners, nil, "review-1", http.StatusForbidden},
		{"missing_resource_forbidden", owners, &sec.Principal{UserID: "user-guest", Role: sec.RoleGuest}, "review-404", http.StatusForbidden},
		{"resolver_error_forbidden", &fakeOwnerResolver{err: errors.New("db down")}, &sec.Principal{UserID: "user-guest", Role: sec.RoleGuest}, "review-1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downstream := &capture{}

			router := chi.NewRouter()
			router.With(middleware.RequireOwner("id", tt.resolver)).Put("/reviews/{id}", downstream.handler())

			request := httptest.NewRequest(http.MethodPut, "/reviews/"+tt.resourceID, nil)
			if tt.principal != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.principal))
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, downstream.called)
		})
	}
}
