// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package schema

// CoreActorTable represents the 'core.actor' table
type CoreActorTable struct {
	Table        string
	ID           string
	Name         string
	Country      string
	Age          string
	OscarsPrizes string
	Genre        string
	Image        string
	MovieIDs     string
	Status       string
	CreatedAt    string
	UpdatedAt    string
}

// CoreActor is the schema definition for core.actor
var CoreActor = CoreActorTable{
	Table:        "core.actor",
	ID:           "id",
	Name:         "name",
	Country:      "country",
	Age:          "age",
	OscarsPrizes: "oscarsprizes",
	Genre:        "genre",
	Image:        "image",
	MovieIDs:     "movieids",
	Status:       "status",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t CoreActorTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Country, t.Age, t.OscarsPrizes, t.Genre, t.Image,
		t.MovieIDs, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
