// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package review

import "context"

type Repository interface {
	ListReviews(context context.Context, f Filter, limit, offset int) ([]*Review, int, error)
	GetReview(context context.Context, id string) (*Review, error)
	CreateReview(context context.Context, r *Review) error
	UpdateReview(context context.Context, r *Review) error
	DeleteReview(context context.Context, id string) error
}

// Filter holds the parameters for a paginated review search.
type Filter struct {
	MovieID string // Restrict to reviews of one movie
	UserID  string // Restrict to reviews by one member
}
