// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminToken   = errors.New("invalid admin token")
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// ValidateAdminToken checks a presented admin token against the configured
// one in constant time.
func ValidateAdminToken(presented, configured string) error {
	if configured == "" {
		// Refuse everything rather than treat a misconfigured server as open.
		return ErrInvalidAdminToken
	}
	if !hmac.Equal([]byte(presented), []byte(configured)) {
		return ErrInvalidAdminToken
	}
	return nil
}

// GenerateSessionToken creates an unguessable token identifying a guest
// session.
func GenerateSessionToken() string {
	return uuid.NewString()
}
