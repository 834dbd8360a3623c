// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package sec

// # User Roles

// Role represents the authorization level granted to an account.
//
// The set is closed: any value outside the enumeration carries no
// privileges at all.
type Role string

const (
	// Unrestricted catalog management (movies, actors, user oversight)
	RoleAdmin Role = "admin"

	// Default role for standard registered users
	RoleGuest Role = "guest"
)

// IsAdmin reports whether the role grants catalog management rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsValid reports whether the role is part of the closed enumeration.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleGuest
}

// # Resolved Identity

// Principal is the caller identity resolved from a session token.
//
// # Lifecycle
//
// It is built by the identity resolver from the stored account record (never
// from token claims alone), attached to the request context by the session
// gate, and read by the role and ownership gates downstream.
type Principal struct {
	// UserID is the account's primary key (UUIDv7).
	UserID string `json:"user_id"`
	// Email is the account's unique login identifier.
	Email string `json:"email"`
	// Role is the account's authorization level.
	Role Role `json:"role"`
}

// IsOwner reports whether the principal's account id matches the given
// resource-owning user id. Empty owner ids never match.
func (p *Principal) IsOwner(ownerID string) bool {
	return ownerID != "" && p.UserID == ownerID
}
