// Package auth verifies bearer credentials issued by the external identity
// provider and turns them into identity claims. The service only verifies
// tokens; it never issues them.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/kernel"
)

var (
	// ErrTokenRequired is returned when no credential is supplied.
	ErrTokenRequired = errors.New("access token required")

	// ErrTokenInvalid is returned when the credential fails the
	// signature, expiry, or claims check.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// tokenClaims is the JWT claims layout produced by the identity provider.
type tokenClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	Email  string   `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates HS256-signed bearer tokens against a shared secret.
// Verification is a pure function of the token and the clock; it performs
// no I/O and is safe for concurrent use.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a token verifier for the given signing secret.
func NewVerifier(secret string) Verifier {
	return Verifier{secret: []byte(secret)}
}

// Verify validates a raw bearer credential and extracts identity claims.
//
// An empty credential fails with ErrTokenRequired. A credential that fails
// the signature or expiry check, or whose claims do not carry a valid user
// identifier, fails with ErrTokenInvalid. Roles may be absent; an empty role
// set simply carries no elevated privilege.
func (v Verifier) Verify(raw string) (identity.Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return identity.Claims{}, ErrTokenRequired
	}

	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return identity.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	decoded, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return identity.Claims{}, ErrTokenInvalid
	}

	userID, err := kernel.UUIDFromString(decoded.UserID)
	if err != nil {
		return identity.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, err := identity.NewClaims(userID, identity.NewRoles(decoded.Roles...), decoded.Email)
	if err != nil {
		return identity.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return claims, nil
}
