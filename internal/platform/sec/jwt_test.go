// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/platform/sec"
)

const testIssuer = "reelhub.test"

/*
TestTokenService_IssueVerify verifies that a freshly issued token verifies
and yields the original subject email.
*/
func TestTokenService_IssueVerify(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", testIssuer, 2*time.Hour)
	require.NoError(t, err)

	token, err := service.IssueSessionToken("viewer@reelhub.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := service.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "viewer@reelhub.app", subject)
}

/*
TestTokenService_Expired verifies that expiry is evaluated at verification
time: a token whose window has passed is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	// Negative TTL puts the exp claim in the past at issuance.
	service, err := sec.NewTokenService("unit-test-secret", testIssuer, -1*time.Minute)
	require.NoError(t, err)

	token, err := service.IssueSessionToken("viewer@reelhub.app")
	require.NoError(t, err)

	_, err = service.VerifySessionToken(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_RejectsForeignSignature verifies that tokens signed with a
different secret never verify.
*/
func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuerService, err := sec.NewTokenService("secret-a", testIssuer, time.Hour)
	require.NoError(t, err)

	verifierService, err := sec.NewTokenService("secret-b", testIssuer, time.Hour)
	require.NoError(t, err)

	token, err := issuerService.IssueSessionToken("viewer@reelhub.app")
	require.NoError(t, err)

	_, err = verifierService.VerifySessionToken(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_Malformed verifies that garbage input collapses into the
single opaque token error.
*/
func TestTokenService_Malformed(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", testIssuer, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "definitely-not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifySessionToken(tt.token)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestNewTokenService_EmptySecret verifies that a token service cannot be
constructed without a signing secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", testIssuer, time.Hour)
	assert.Error(t, err)
}

/*
TestRole_Enumeration verifies the closed role set and the admin check.
*/
func TestRole_Enumeration(t *testing.T) {
	assert.True(t, sec.RoleAdmin.IsAdmin())
	assert.False(t, sec.RoleGuest.IsAdmin())
	assert.False(t, sec.Role("moderator").IsAdmin())

	assert.True(t, sec.RoleAdmin.IsValid())
	assert.True(t, sec.RoleGuest.IsValid())
	assert.False(t, sec.Role("").IsValid())
}

/*
TestPrincipal_IsOwner verifies the typed ownership comparison.
*/
func TestPrincipal_IsOwner(t *testing.T) {
	principal := &sec.Principal{UserID: "user-1", Email: "a@b.c", Role: sec.RoleGuest}

	assert.True(t, principal.IsOwner("user-1"))
	assert.False(t, principal.IsOwner("user-2"))
	assert.False(t, principal.IsOwner(""))
}
