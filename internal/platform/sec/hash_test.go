// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/platform/sec"
)

/*
TestHashPassword_Roundtrip verifies that a hashed password verifies against
its own plaintext and nothing else.
*/
func TestHashPassword_Roundtrip(t *testing.T) {
	digest, err := sec.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	// The digest must never echo the plaintext
	assert.NotContains(t, digest, "s3cret-password")

	assert.True(t, sec.CheckPasswordHash("s3cret-password", digest))
	assert.False(t, sec.CheckPasswordHash("wrong-password", digest))
	assert.False(t, sec.CheckPasswordHash("", digest))
}

/*
TestHashPassword_SaltedOutput verifies that hashing is salted: two digests of
the same plaintext differ, yet both verify.
*/
func TestHashPassword_SaltedOutput(t *testing.T) {
	first, err := sec.HashPassword("repeatable")
	require.NoError(t, err)

	second, err := sec.HashPassword("repeatable")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("repeatable", first))
	assert.True(t, sec.CheckPasswordHash("repeatable", second))
}

/*
TestCheckPasswordHash_MalformedDigest verifies that a corrupted digest is
reported as a plain mismatch, not a panic or error.
*/
func TestCheckPasswordHash_MalformedDigest(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("anything", "not-a-bcrypt-digest"))
	assert.False(t, sec.CheckPasswordHash("anything", ""))
}

/*
TestGenerateSecureToken verifies entropy length and uniqueness of opaque tokens.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
