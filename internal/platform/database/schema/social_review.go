// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package schema

// SocialReviewTable represents the 'social.review' table
type SocialReviewTable struct {
	Table     string
	ID        string
	Title     string
	Text      string
	Rating    string
	UserID    string
	MovieID   string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// SocialReview is the schema definition for social.review
var SocialReview = SocialReviewTable{
	Table:     "social.review",
	ID:        "id",
	Title:     "title",
	Text:      "text",
	Rating:    "rating",
	UserID:    "userid",
	MovieID:   "movieid",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t SocialReviewTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Text, t.Rating, t.UserID, t.MovieID,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
