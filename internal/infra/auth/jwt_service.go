// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"scout/config"
	"scout/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// The session core has no refresh flow: sessions end by explicit logout.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: 24 * time.Hour,
	}, nil
}

// GenerateToken creates a signed access token carrying the uid.
func (s *jwtService) GenerateToken(uid string) (string, error) {
	claims := jwt.MapClaims{
		"sub": uid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and returns the uid.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}

	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return "", jwt.ErrTokenInvalidSubject
	}

	return uid, nil
}
