// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTokenTTL is the fixed validity window embedded into every
	// session token. Short (2 hours) to bound the impact of a leaked token;
	// there is no server-side revocation.
	SessionTokenTTL = 2 * time.Hour

	// ResetTokenTTL is the duration a password reset token remains valid.
	// Short-lived (1 hour) for security.
	ResetTokenTTL = 1 * time.Hour

	// ResetTokenLength is the byte length of the random password reset token.
	ResetTokenLength = 32

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 8
)

// # Account Status

const (
	// StatusActive marks an account that may authenticate and act.
	StatusActive = "active"

	// StatusDisabled marks an account that is retained but can no longer
	// authenticate. Disabled accounts resolve to no identity.
	StatusDisabled = "disabled"
)
