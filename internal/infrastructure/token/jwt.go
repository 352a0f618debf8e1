// Package token issues and verifies the HS256 bearer tokens handed out at login.
//
// Tokens carry only the user id. They have no expiry: an issued token stays
// valid until the signing secret changes or the user is deleted.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

type claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// JWT implements ports.TokenIssuer with a shared HMAC secret.
type JWT struct {
	secret []byte
	now    func() time.Time
}

// NewJWT returns an issuer signing with secret. An empty secret is rejected.
func NewJWT(secret string) (*JWT, error) {
	if secret == "" {
		return nil, errors.New("token: empty signing secret")
	}
	return &JWT{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs {id: userID}. Only iat is set; exp is deliberately absent.
func (j *JWT) Issue(userID string) (string, error) {
	c := claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(j.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the embedded identity. Expiry is
// never required.
func (j *JWT) Verify(raw string) (*ports.Claims, error) {
	var c claims
	tkn, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if c.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &ports.Claims{UserID: c.ID}, nil
}
