// Package jwtx signs and verifies the single-slot session token. The persisted
// session is untrusted input on restart; an HMAC signature lets restore reject
// tampered or hand-crafted slot contents instead of trusting them.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a token that failed parsing or signature checks.
var ErrInvalidToken = errors.New("jwtx: invalid session token")

// SessionClaims carries the authenticated identity inside the session token.
type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Signer mints and verifies HS256 session tokens with a shared secret.
type Signer struct {
	secret []byte
	issuer string
}

func NewSigner(secret, issuer string) *Signer {
	return &Signer{secret: []byte(secret), issuer: issuer}
}

// Sign mints a token for the given identity. Session tokens carry no expiry:
// like the original's stored session, they live until logout.
func (s *Signer) Sign(userID, name, email string, createdAt time.Time) (string, error) {
	claims := SessionClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(createdAt.UTC()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies the token signature and issuer and returns the claims.
func (s *Signer) Parse(token string) (SessionClaims, error) {
	var claims SessionClaims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
	)
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}
	if claims.IssuedAt == nil {
		return SessionClaims{}, ErrInvalidToken
	}
	return claims, nil
}
