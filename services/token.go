package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the "iss" claim on every access token.
const TokenIssuer = "tostreak"

var ErrMissingSecret = errors.New("JWT secret is not configured")

// GenerateAccessToken signs an HS256 token for subject that expires after ttl.
func GenerateAccessToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates signature, issuer and expiry and returns the
// claims.
func ParseAccessToken(secret, tokenString string) (*jwt.RegisteredClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
