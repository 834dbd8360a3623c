// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package actor

import "time"

// Actor represents a performer listed in the catalogue.
type Actor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Country      string    `json:"country"`
	Age          int       `json:"age"`
	OscarsPrizes int       `json:"oscars_prizes"`
	Genre        string    `json:"genre"`
	Image        string    `json:"image"`
	MovieIDs     []string  `json:"movie_ids"` // Maintained by the relation coordinator
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated actor search.
type Filter struct {
	Query string // Substring search against name
}

// Global field names for validation
const (
	FieldName         = "name"
	FieldCountry      = "country"
	FieldAge          = "age"
	FieldOscarsPrizes = "oscars_prizes"
	FieldGenre        = "genre"
	FieldImage        = "image"
)
