// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reelhub/reelhub/internal/users/auth"
	"github.com/reelhub/reelhub/pkg/pagination"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
ListProfiles returns a page of member profiles.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*auth.User: Page of accounts
  - pagination.Meta: Navigation metadata
  - error: Retrieval failures
*/
func (service *Service) ListProfiles(context context.Context, params pagination.Params) ([]*auth.User, pagination.Meta, error) {
	users, total, err := service.accountRepository.List(context, params)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
GetProfile retrieves the full identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput defines the mutable subset of user profile fields.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Fetches the existing user state, overrides provided fields, and
synchronizes the change to persistent storage.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: Update or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {

	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		user.Name = *input.Name
	}

	// Apply delta updates
	if input.Email != nil {
		user.Email = *input.Email
	}

	// Persist changes
	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

/*
DisableAccount retires a user account.

Description: Flags the account as disabled so it can no longer authenticate.
Reviews written by the user are NOT removed; their userid references simply
stop resolving to an active account.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Execution failures
*/
func (service *Service) DisableAccount(context context.Context, userID string) error {

	if err := service.accountRepository.Disable(context, userID); err != nil {
		return fmt.Errorf("account_service_disable_failed: %w", err)
	}

	service.logger.Warn("user_account_disabled", slog.String("user_id", userID))

	return nil
}
