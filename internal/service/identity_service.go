package service

import (
	"context"
	"fmt"

	"marketplace-backend/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTIdentityVerifier implements ports.IdentityVerifier against HS256 tokens
// issued by the auth provider. The subject claim carries the user id and the
// email claim the sign-in address.
type JWTIdentityVerifier struct {
	secret []byte
}

// NewJWTIdentityVerifier creates a new JWTIdentityVerifier.
func NewJWTIdentityVerifier(secret string) *JWTIdentityVerifier {
	return &JWTIdentityVerifier{secret: []byte(secret)}
}

// Verify parses and validates a bearer token.
func (s *JWTIdentityVerifier) Verify(_ context.Context, tokenString string) (*ports.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	email, _ := claims["email"].(string)

	return &ports.Identity{UserID: userID, Email: email}, nil
}
