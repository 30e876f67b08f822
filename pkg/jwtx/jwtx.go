// Package jwtx verifies the platform's HS256 bearer tokens. The identity
// provider lives elsewhere; this service only needs to check a shared-secret
// signature and lift the account id, email, and scopes out of the claims.
package jwtx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrWrongIssuer  = errors.New("jwtx: wrong issuer")
)

// Claims are the verified identity claims this service cares about.
type Claims struct {
	Subject string   // account id (landlord, tenant, or admin)
	Email   string   // authenticated email, used for restricted-code checks
	Scopes  []string // space-delimited "scope" claim, split
}

type rawClaims struct {
	Email string `json:"email"`
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens signed with the shared platform secret.
type Verifier struct {
	Secret []byte
	Issuer string
}

// Verify parses and validates raw, returning its claims. Expiry and
// signature failures both come back as ErrInvalidToken; issuer mismatch is
// reported separately since it usually means a misconfigured environment.
func (v *Verifier) Verify(raw string) (Claims, error) {
	parsed := &rawClaims{}
	_, err := jwt.ParseWithClaims(raw, parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.Secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if v.Issuer != "" && parsed.Issuer != v.Issuer {
		return Claims{}, ErrWrongIssuer
	}
	if parsed.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return Claims{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Scopes:  strings.Fields(parsed.Scope),
	}, nil
}

// Signer mints tokens for tests and local development tooling.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Sign issues an HS256 token for the given identity.
func (s *Signer) Sign(subject, email string, scopes []string) (string, error) {
	ttl := s.TTL
	if ttl == 0 {
		ttl = time.Hour
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &rawClaims{
		Email: email,
		Scope: strings.Join(scopes, " "),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString(s.Secret)
}
