// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

/*
Package account handles user profile management.

It provides functionalities for browsing member profiles and for users to
update or retire their own account.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Security: Mutations are guarded by the ownership middleware; only the
    profile owner may edit or disable it.
*/
package account

import (
	"context"

	"github.com/reelhub/reelhub/internal/users/auth"
	"github.com/reelhub/reelhub/pkg/pagination"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		List retrieves a page of active user accounts.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []*auth.User: Page of accounts
		  - int: Total count of active accounts
		  - error: Retrieval failures
	*/
	List(context context.Context, params pagination.Params) ([]*auth.User, int, error)

	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		Update modifies the mutable profile fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		Disable flags an account as retired. The record and its review
		references are retained.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Execution failures
	*/
	Disable(context context.Context, id string) error

	/*
		PushReviewID appends a review reference to the user's reviewids
		array. Appends are not deduplicated.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - reviewID: string

		Returns:
		  - error: Execution failures
	*/
	PushReviewID(context context.Context, userID, reviewID string) error
}
