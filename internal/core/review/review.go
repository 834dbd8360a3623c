// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package review

import "time"

// Review is a member's rating of a movie.
//
// The UserID and MovieID references are plain values; the matching reviewids
// entries on the user and movie rows are maintained by the relation
// coordinator at creation time and are never cleaned up on delete.
type Review struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"` // 1..5
	UserID    string    `json:"user_id"`
	MovieID   string    `json:"movie_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Global field names for validation
const (
	FieldTitle  = "title"
	FieldText   = "text"
	FieldRating = "rating"
)
