// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

// Package schema centralizes table and column identifiers for the catalog
// database. Stores build their SQL from these definitions so renames touch
// exactly one file.
//
// # No Foreign Keys
//
// The reference arrays (reviewids, actorids, movieids) are plain uuid[]
// columns maintained by application code. The schema deliberately carries no
// foreign-key constraints between them, mirroring the guarantees of the
// document store this catalog was originally built on.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Password  string
	Role      string
	ReviewIDs string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Password:  "passwordhash",
	Role:      "role",
	ReviewIDs: "reviewids",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Password, t.Role, t.ReviewIDs,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
