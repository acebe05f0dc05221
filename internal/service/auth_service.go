//go:generate mockgen -source=$GOFILE -destination=mock/auth_service.go -package=mock
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tradeops/backend/pkg/logger"
)

// AuthService issues and verifies guest bearer tokens. It is a deliberate
// placeholder trust boundary: a real identity provider can implement the
// same interface without touching the pipeline.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(token string) (bool, error)
}

type authService struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

func NewAuthService(username, password string, ttl time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash guest password: %w", err)
	}

	// Per-process secret: issued tokens do not survive a restart.
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate token secret: %w", err)
	}

	return &authService{
		username:     username,
		passwordHash: hash,
		secret:       secret,
		ttl:          ttl,
	}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(username), s.username) {
		return "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	logger.Info("guest login", "module", "service", "action", "login", "result", "ok", "user", s.username)
	return token, nil
}

func (s *authService) ValidateToken(tokenString string) (bool, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return false, nil
	}
	return token.Valid, nil
}
