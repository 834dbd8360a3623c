// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

/*
Package auth implements the core identity and access management (IAM) system.

It handles everything from user registration and secure password hashing to
stateless session tokens (JWT) and the password recovery flow (tokens stored
in Redis).

Architecture:

  - Service: Orchestrates business logic (Register, Login, token resolution).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Reset tokens).
  - Security: Leverages Bcrypt hashing and HMAC-signed JWTs.

The package ensures that identity data remains consistent and secure throughout
the platform’s lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/reelhub/reelhub/internal/platform/apperr"
	"github.com/reelhub/reelhub/internal/platform/sec"
	"github.com/reelhub/reelhub/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and verifying session tokens.
type TokenProvider interface {
	// IssueSessionToken creates a signed session token whose subject is the
	// account email.
	//
	// # Parameters
	//   - subjectEmail: The email of the authenticated account.
	//
	// # Returns
	//   - A signed token string, or an err if signing fails.
	IssueSessionToken(subjectEmail string) (string, error)

	// VerifySessionToken validates a session token and returns the subject email.
	//
	// # Parameters
	//   - tokenString: The raw bearer token presented by the client.
	//
	// # Returns
	//   - The subject email, or [sec.ErrInvalidToken] for any verification failure.
	VerifySessionToken(tokenString string) (string, error)

	// TTL reports the configured session token lifetime.
	TTL() time.Duration
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository       UserRepository
	resetTokenRepository ResetTokenRepository
	tokenProvider        TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	resetRepo ResetTokenRepository,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		userRepository:       userRepo,
		resetTokenRepository: resetRepo,
		tokenProvider:        tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     sec.Role // Optional. Defaults to guest when empty.
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Deep-enrollment of a new member, handling password hashing and
role assignment. Unknown or empty roles fall back to guest.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Self-registration never grants elevated roles implicitly
	role := input.Role
	if !role.IsValid() {
		role = sec.RoleGuest
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		ReviewIDs:    []string{},
		Status:       StatusActive,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

/*
Login validates user credentials and issues a session token.

Description: Verifies identity, performs constant-time password comparison,
and issues a signed token carrying the account email as its subject.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session credentials
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Look up the account by email.
	// Generic message on failure to prevent account enumeration.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks.
	// Same generic message so a valid email cannot be distinguished from a bad password.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Issue the signed session token
	token, err := service.tokenProvider.IssueSessionToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		Token:     token,
		ExpiresAt: time.Now().Add(service.tokenProvider.TTL()),
		User:      user,
	}, nil
}

// # Identity Resolution

/*
ResolveToken turns a raw bearer token into the requester's [sec.Principal].

Description: Verifies the token signature and expiry, then loads the current
account for the embedded subject email. Invalid tokens and subjects that no
longer resolve to an account both yield an anonymous (nil, nil) result so the
caller can proceed unauthenticated. Only infrastructure failures surface as
errors.

Parameters:
  - context: context.Context
  - token: string (raw token without the Bearer scheme)

Returns:
  - *sec.Principal: Resolved identity, or nil for anonymous
  - err: Storage connectivity failures only
*/
func (service *Service) ResolveToken(context context.Context, token string) (*sec.Principal, error) {

	// Verify signature and expiry. Any token defect means no identity.
	email, err := service.tokenProvider.VerifySessionToken(token)
	if err != nil {
		return nil, nil
	}

	// The token subject must still resolve to a live account. A deleted or
	// disabled account carries a valid signature but no identity.
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("auth_service_resolve_token_failed: %w", err)
	}

	return user.Principal(), nil
}

// # Password Recovery

/*
RequestPasswordReset initiates the forgot-password flow.

Description: Generates a secure token and saves it to Redis.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - string: Discovery token
  - err: Generation errors
*/
func (service *Service) RequestPasswordReset(context context.Context, email string) (string, error) {
	// Look up user.
	// NOTE: We don't return NOT_FOUND if the email doesn't exist to prevent user enumeration.
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return "", nil
	}

	// Generate reset token
	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return "", fmt.Errorf("auth_service_generate_reset_token_failed: %w", err)
	}

	// Save to Redis
	if err := service.resetTokenRepository.Set(context, token, user.ID, ResetTokenTTL); err != nil {
		return "", fmt.Errorf("auth_service_save_reset_token_failed: %w", err)
	}

	return token, nil
}

/*
ResetPassword completes the forgot-password flow.

Description: Verifies the token, hashes the new password, and updates the DB.

Parameters:
  - context: context.Context
  - token: string
  - newPassword: string

Returns:
  - err: Validation or update failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {

	// Retrieve the userID associated with the reset token from Redis
	userID, err := service.resetTokenRepository.Get(context, token)
	if err != nil {
		return err
	}

	// Hash the new password securely
	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_reset_password_hash_failed: %w", err)
	}

	// Update the user's password in persistent storage
	if err := service.userRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_reset_password_update_failed: %w", err)
	}

	// Delete the used token from Redis
	_ = service.resetTokenRepository.Delete(context, token)

	return nil
}
