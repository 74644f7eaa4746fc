package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken is returned by Verify for every rejection: bad
// signature, malformed token or elapsed expiry. Callers cannot tell
// an expired token from a corrupt one.
var ErrInvalidToken = errors.New("invalid token")

// tokenValidity is the fixed window between issuance and expiry.
const tokenValidity = 7 * 24 * time.Hour

// Claims is the identity embedded in a session token.
type Claims struct {
	UserID uint
	Email  string
}

// TokenService issues and verifies signed session tokens. The signing
// secret is provided once at construction and never logged.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new TokenService with the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed HS256 token embedding the identity claims and
// an expiry seven days out.
func (s *TokenService) Issue(userID uint, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenValidity).Unix(),
		"iat":     time.Now().Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: uint(userID), Email: email}, nil
}
