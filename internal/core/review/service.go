// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

// Package review manages member reviews of movies.
//
// Review creation does not live here: it is a three-write operation owned by
// the relation coordinator so the reviewids arrays on the user and movie are
// maintained alongside the review row. This package covers reads, owner
// edits, and deletes.
package review

import (
	"context"
	"log/slog"

	"github.com/reelhub/reelhub/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListReviews(context context.Context, filter Filter, limit, offset int) ([]*Review, int, error) {
	return service.repo.ListReviews(context, filter, limit, offset)
}

func (service *Service) GetReview(context context.Context, id string) (*Review, error) {
	return service.repo.GetReview(context, id)
}

func (service *Service) UpdateReview(context context.Context, id string, review *Review) error {
	review.ID = id
	if err := ValidateContent(review.Title, review.Text, review.Rating); err != nil {
		return err
	}

	if err := service.repo.UpdateReview(context, review); err != nil {
		return err
	}

	service.logger.Info("review_updated", slog.String("review_id", review.ID))
	return nil
}

// DeleteReview retires a review. The reviewids entries on the author and the
// movie are left in place.
func (service *Service) DeleteReview(context context.Context, id string) error {
	if err := service.repo.DeleteReview(context, id); err != nil {
		return err
	}

	service.logger.Warn("review_deleted", slog.String("review_id", id))
	return nil
}

// ValidateContent checks the writable fields of a review. It is shared with
// the relation coordinator, which owns review creation.
func ValidateContent(title, text string, rating int) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, 200).
		Required(FieldText, text).MaxLen(FieldText, text, 2000).
		Range(FieldRating, rating, MinRating, MaxRating)

	return validator.Err()
}
