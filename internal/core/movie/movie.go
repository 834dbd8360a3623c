// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

/*
Package movie defines the core domain entities for the Reelhub catalogue.

It manages the lifecycle of movies including metadata, cast references, and
review references.

Core Responsibility:

  - Catalogue: Defines the movie aggregate and its discovery metadata.
  - Discovery: Manages URL slugs derived from titles.
  - References: Carries actorids and reviewids arrays maintained by the
    relation coordinator.

This package acts as the source of truth for all movie-related data models.
*/
package movie

import "time"

// # Core Entities

// Movie is the central aggregate of the Reelhub domain.
// It represents a single title in the catalogue.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"` // URL-safe identifier derived from Title
	Description string `json:"description"`
	Duration    int    `json:"duration"` // Runtime in minutes
	Top         int    `json:"top"`      // Editorial ranking score, 0..10
	Genre       string `json:"genre"`
	Image       string `json:"image"`

	// # Reference Arrays
	// Maintained by the relation coordinator. Appends are not deduplicated
	// and entries are never cleaned up when the referenced row is deleted.
	ActorIDs  []string `json:"actor_ids"`
	ReviewIDs []string `json:"review_ids"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated movie search.
type Filter struct {
	Query string // Substring search against title
	Genre string // Exact genre match
}

// Top score bounds for a movie.
const (
	MinTop = 0
	MaxTop = 10
)

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldTop         = "top"
	FieldGenre       = "genre"
	FieldImage       = "image"
	FieldMessage     = "message"
)
