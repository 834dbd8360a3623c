// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package schema

// CoreMovieTable represents the 'core.movie' table
type CoreMovieTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	Duration    string
	Top         string
	Genre       string
	Image       string
	ActorIDs    string
	ReviewIDs   string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// CoreMovie is the schema definition for core.movie
var CoreMovie = CoreMovieTable{
	Table:       "core.movie",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	Duration:    "duration",
	Top:         "top",
	Genre:       "genre",
	Image:       "image",
	ActorIDs:    "actorids",
	ReviewIDs:   "reviewids",
	Status:      "status",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreMovieTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Duration, t.Top, t.Genre,
		t.Image, t.ActorIDs, t.ReviewIDs, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
