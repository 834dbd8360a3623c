// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reelhub/reelhub/internal/platform/apperr"
	"github.com/reelhub/reelhub/internal/platform/database/schema"
	"github.com/reelhub/reelhub/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListReviews(context context.Context, f Filter, limit, offset int) ([]*Review, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = 'active'
	`,
		schema.SocialReview.ID, schema.SocialReview.Title, schema.SocialReview.Text,
		schema.SocialReview.Rating, schema.SocialReview.UserID, schema.SocialReview.MovieID,
		schema.SocialReview.Status, schema.SocialReview.CreatedAt, schema.SocialReview.UpdatedAt,
		schema.SocialReview.Table, schema.SocialReview.Status,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = 'active'`,
		schema.SocialReview.Table, schema.SocialReview.Status,
	)

	args := []any{}
	countArgs := []any{}

	if f.MovieID != "" {
		clause := fmt.Sprintf(" AND %s = $%d", schema.SocialReview.MovieID, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.MovieID)
		countArgs = append(countArgs, f.MovieID)
	}

	if f.UserID != "" {
		clause := fmt.Sprintf(" AND %s = $%d", schema.SocialReview.UserID, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.UserID)
		countArgs = append(countArgs, f.UserID)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", schema.SocialReview.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_reviews")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		r := &Review{}
		if err := rows.Scan(
			&r.ID, &r.Title, &r.Text, &r.Rating, &r.UserID, &r.MovieID,
			&r.Status, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}

	return reviews, total, nil
}

func (repository *PostgresRepository) GetReview(context context.Context, id string) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = 'active'
	`,
		schema.SocialReview.ID, schema.SocialReview.Title, schema.SocialReview.Text,
		schema.SocialReview.Rating, schema.SocialReview.UserID, schema.SocialReview.MovieID,
		schema.SocialReview.Status, schema.SocialReview.CreatedAt, schema.SocialReview.UpdatedAt,
		schema.SocialReview.Table, schema.SocialReview.ID, schema.SocialReview.Status,
	)
	r := &Review{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&r.ID, &r.Title, &r.Text, &r.Rating, &r.UserID, &r.MovieID,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_review")
	}

	return r, nil
}

func (repository *PostgresRepository) CreateReview(context context.Context, r *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, 'active', NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.SocialReview.Table,
		schema.SocialReview.ID, schema.SocialReview.Title, schema.SocialReview.Text,
		schema.SocialReview.Rating, schema.SocialReview.UserID, schema.SocialReview.MovieID,
		schema.SocialReview.Status, schema.SocialReview.CreatedAt, schema.SocialReview.UpdatedAt,
		schema.SocialReview.Status, schema.SocialReview.CreatedAt, schema.SocialReview.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.ID, r.Title, r.Text, r.Rating, r.UserID, r.MovieID,
	).Scan(&r.Status, &r.CreatedAt, &r.UpdatedAt)
	return dberr.Wrap(err, "create_review")
}

func (repository *PostgresRepository) UpdateReview(context context.Context, r *Review) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s = 'active'
		RETURNING %s
	`,
		schema.SocialReview.Table,
		schema.SocialReview.Title, schema.SocialReview.Text, schema.SocialReview.Rating,
		schema.SocialReview.UpdatedAt,
		schema.SocialReview.ID, schema.SocialReview.Status,
		schema.SocialReview.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, r.ID, r.Title, r.Text, r.Rating).Scan(&r.UpdatedAt)
	return dberr.Wrap(err, "update_review")
}

// DeleteReview retires the review row only. The reviewids entries on the
// authoring user and the reviewed movie are NOT pulled; stale references
// are expected and tolerated by readers.
func (repository *PostgresRepository) DeleteReview(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = 'disabled', %s = NOW() WHERE %s = $1 AND %s = 'active'`,
		schema.SocialReview.Table, schema.SocialReview.Status, schema.SocialReview.UpdatedAt,
		schema.SocialReview.ID, schema.SocialReview.Status,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
ResolveOwnerID resolves the authoring user of a review.

Description: Feeds the ownership gate on review mutations. Missing reviews
return apperr.NotFound so the gate fails closed.

Parameters:
  - context: context.Context
  - resourceID: string (Review ID)

Returns:
  - string: Authoring user ID
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresRepository) ResolveOwnerID(context context.Context, resourceID string) (string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = 'active'`,
		schema.SocialReview.UserID, schema.SocialReview.Table,
		schema.SocialReview.ID, schema.SocialReview.Status,
	)

	var ownerID string
	err := repository.db.QueryRow(context, query, resourceID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("Review")
		}
		return "", fmt.Errorf("postgres_review_repo_resolve_owner_failed: %w", err)
	}

	return ownerID, nil
}
