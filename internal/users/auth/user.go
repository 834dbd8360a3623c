// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package auth

import (
	"time"

	"github.com/reelhub/reelhub/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Reelhub catalog.
//
// ReviewIDs is the user-side half of the user↔review relationship: an
// ordered append-only sequence of review ids maintained by the relationship
// coordinator, not by the database.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"role"`
	ReviewIDs    []string  `json:"review_ids"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal converts the stored account into the request-scoped identity
// attached by the session gate.
func (user *User) Principal() *sec.Principal {
	return &sec.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldToken       = "token"
	FieldNewPassword = "new_password"
)
