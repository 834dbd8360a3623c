// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces (e.g. the auth service's
// TokenProvider).
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by VerifySessionToken for every rejected token.
//
// # Why one error?
//
// Signature mismatch, malformed payload, and expiry are deliberately
// indistinguishable to callers so the API cannot be used as a token-format
// oracle.
var ErrInvalidToken = errors.New("sec: invalid session token")

// TokenService issues and verifies stateless session tokens using HS256.
//
// A token binds the subject's email to a fixed expiry window. Nothing is
// persisted server-side; the lifecycle is bounded purely by the embedded
// expiry claim.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given shared secret.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: session secret must not be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    timeToLive,
	}, nil
}

// TTL returns the fixed validity window embedded into issued tokens.
func (service *TokenService) TTL() time.Duration {
	return service.ttl
}

// IssueSessionToken creates a signed session token for the given account email.
//
// # Claims
//   - sub: the account email (the sole identity payload)
//   - iat: issuance time
//   - exp: issuance time plus the fixed TTL
func (service *TokenService) IssueSessionToken(subjectEmail string) (string, error) {
	currentTime := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectEmail,
		Issuer:    service.issuer,
		IssuedAt:  jwt.NewNumericDate(currentTime),
		ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// VerifySessionToken checks signature and expiry and returns the subject email.
//
// Expiry is evaluated against the wall clock at verification time. Both the
// signature check and the expiry check are mandatory; any failure collapses
// into [ErrInvalidToken].
func (service *TokenService) VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
