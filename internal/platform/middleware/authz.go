// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

// Authorization gates. Executed strictly in order within one request:
//
//	Authenticate (session gate) → RequireAuth | RequireAdmin | RequireOwner
//
// A later gate never runs once an earlier one has terminated the request.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/reelhub/reelhub/internal/platform/apperr"
	"github.com/reelhub/reelhub/internal/platform/constants"
	"github.com/reelhub/reelhub/internal/platform/ctxutil"
	"github.com/reelhub/reelhub/internal/platform/respond"
	"github.com/reelhub/reelhub/internal/platform/sec"
)

// IdentityResolver turns a bearer token into a stored account identity.
//
// # Contract
//
// The resolver verifies the token AND looks the subject up in the identity
// store. A bad signature, an expired token, or a token whose subject no
// longer exists all yield (nil, nil): the caller is simply anonymous. Only
// infrastructure failures (identity store unreachable) return an error.
//
// # Why an interface?
//
// Defining IdentityResolver here decouples the middleware from the `auth`
// service implementation, allowing us to easily inject fakes during unit
// testing.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*sec.Principal, error)
}

// OwnerResolver reports which user id owns a given resource.
//
// Implemented by the account store (a profile is owned by itself) and the
// review store (a review is owned by its immutable userId).
type OwnerResolver interface {
	ResolveOwnerID(ctx context.Context, resourceID string) (string, error)
}

// # Session Gate

// Authenticate extracts and resolves the session token from the Authorization header.
//
// # Flow
//  1. No 'Authorization' header: request proceeds as anonymous.
//  2. Header present but not 'Bearer <token>': terminal 400 SESSION_INVALID.
//  3. Token resolves to a stored identity: [*sec.Principal] is attached to
//     the request context and the chain continues.
//  4. Token is invalid, expired, or names a deleted account: request
//     proceeds as anonymous (the distinction is collapsed on purpose so the
//     endpoint cannot be probed for token formats).
//  5. Identity store failure: terminal 400 SESSION_INVALID.
//
// Unlike its ancestor, this gate never writes a 401 and then still invokes
// the next handler; enforcement belongs to the downstream gates.
func Authenticate(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Scheme Validation ──────────────────────────────────────────
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], constants.AuthScheme) {
				respond.Error(writer, request, apperr.SessionInvalid(nil))
				return
			}

			// ── 3. Identity Resolution ────────────────────────────────────────
			principal, err := resolver.ResolveToken(request.Context(), parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.SessionInvalid(err))
				return
			}

			// ── 4. Anonymous Fallthrough ──────────────────────────────────────
			if principal == nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Downstream Gates

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetAuthUser(request.Context())
		if principal == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin blocks requests whose resolved identity does not carry the
// admin role.
//
// # Flow
//  1. Check if a [*sec.Principal] exists in context.
//  2. Check the role against the closed enumeration.
//
// Both an absent identity and a non-admin identity terminate with HTTP 403:
// the role gate answers "may you do this", not "who are you".
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetAuthUser(request.Context())

		if principal == nil || !principal.Role.IsAdmin() {
			respond.Error(writer, request, apperr.Forbidden("You do not have permissions to execute this action"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// RequireOwner blocks requests whose resolved identity does not own the
// resource addressed by the given URL parameter.
//
// # Flow
//  1. Check if a [*sec.Principal] exists in context; absent → 403.
//  2. Resolve the owning user id of the addressed resource.
//  3. Compare it with the principal's account id.
//
// # Fail Closed
//
// A resolver error, a missing resource, and an empty owner id are all
// treated as non-match (403), never as pass.
func RequireOwner(paramName string, resolver OwnerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := ctxutil.GetAuthUser(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if principal == nil {
				respond.Error(writer, request, apperr.Forbidden("Access denied, you do not have permission to edit this resource"))
				return
			}

			// ── 2. Ownership Resolution ───────────────────────────────────────
			resourceID := chi.URLParam(request, paramName)
			ownerID, err := resolver.ResolveOwnerID(request.Context(), resourceID)
			if err != nil || !principal.IsOwner(ownerID) {
				respond.Error(writer, request, apperr.Forbidden("Access denied, you do not have permission to edit this resource"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// GetUser retrieves the [*sec.Principal] from the [context.Context].
//
// # Returns
//   - The resolved principal if the request is authenticated.
//   - nil if the request is anonymous.
func GetUser(ctx context.Context) *sec.Principal {
	return ctxutil.GetAuthUser(ctx)
}
