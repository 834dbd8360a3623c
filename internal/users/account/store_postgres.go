// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reelhub/reelhub/internal/platform/apperr"
	"github.com/reelhub/reelhub/internal/platform/database/schema"
	"github.com/reelhub/reelhub/internal/users/auth"
	"github.com/reelhub/reelhub/pkg/pagination"
)

// # Repository Implementation

// PostgresAccountRepository implements [AccountRepository] using pgx.
//
// It also satisfies the ownership resolver contract used by the profile
// mutation middleware: a profile is owned by the account it identifies.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new Postgres implementation for profile management.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
List retrieves a page of active user accounts ordered by creation time.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*auth.User: Page of accounts
  - int: Total active account count
  - error: Retrieval failures
*/
func (repository *PostgresAccountRepository) List(context context.Context, params pagination.Params) ([]*auth.User, int, error) {
	countQuery := fmt.Sprintf(
		`SELECT COUNT(*) FROM %s WHERE %s = 'active'`,
		schema.UserAccount.Table, schema.UserAccount.Status,
	)

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_count_failed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = 'active'
		ORDER BY %s
		LIMIT $1 OFFSET $2`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.ReviewIDs,
		schema.UserAccount.Status, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.Status, schema.UserAccount.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_list_failed: %w", err)
	}
	defer rows.Close()

	users := make([]*auth.User, 0, params.Limit)
	for rows.Next() {
		user := &auth.User{}
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.ReviewIDs,
			&user.Status,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_account_repo_scan_failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_rows_failed: %w", err)
	}

	return users, total, nil
}

/*
FindByID retrieves a user record from the users.account table.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *auth.User: Hydrated identity entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = 'active'`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.ReviewIDs,
		schema.UserAccount.Status, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.Status,
	)

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ReviewIDs,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}

/*
Update modifies the mutable profile metadata of a user.

Description: Syncs the name and email fields while refreshing the updatedat
timestamp.

Parameters:
  - context: context.Context
  - user: *auth.User

Returns:
  - error: Update failures
*/
func (repository *PostgresAccountRepository) Update(context context.Context, user *auth.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1 AND %s = 'active'`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Email, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.Status,
	)

	user.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query, user.ID, user.Name, user.Email, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_account_repo_update_failed: %w", err)
	}

	return nil
}

/*
Disable marks a user account as disabled.

Description: Retention-friendly retirement. The row and its reviewids array
survive so existing review references keep their shape.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution failures
*/
func (repository *PostgresAccountRepository) Disable(context context.Context, id string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET %s = 'disabled', %s = $2 WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.Status,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID,
	)

	_, err := repository.pool.Exec(context, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_repo_disable_failed: %w", err)
	}

	return nil
}

/*
PushReviewID appends a review reference to the user's reviewids array.

Description: Uses array_append directly, so repeated pushes of the same
review ID accumulate rather than deduplicate.

Parameters:
  - context: context.Context
  - userID: string
  - reviewID: string

Returns:
  - error: Execution failures
*/
func (repository *PostgresAccountRepository) PushReviewID(context context.Context, userID, reviewID string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET %s = array_append(%s, $2), %s = $3 WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.ReviewIDs,
		schema.UserAccount.ReviewIDs, schema.UserAccount.UpdatedAt, schema.UserAccount.ID,
	)

	tag, err := repository.pool.Exec(context, query, userID, reviewID, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_repo_push_review_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
ResolveOwnerID resolves the owner of a profile resource.

Description: A profile is owned by the account it identifies, so resolution
is an existence check that echoes the ID back. Missing or disabled accounts
return apperr.NotFound so the ownership gate fails closed.

Parameters:
  - context: context.Context
  - resourceID: string (Profile / user ID)

Returns:
  - string: Owning user ID
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresAccountRepository) ResolveOwnerID(context context.Context, resourceID string) (string, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s = $1 AND %s = 'active'`,
		schema.UserAccount.ID, schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Status,
	)

	var ownerID string
	err := repository.pool.QueryRow(context, query, resourceID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("User")
		}
		return "", fmt.Errorf("postgres_account_repo_resolve_owner_failed: %w", err)
	}

	return ownerID, nil
}
