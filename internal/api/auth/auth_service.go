package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/go-tour-guide/config"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

var _ Service = (*ServiceImpl)(nil)

// Service authenticates the single configured admin and issues tokens.
type Service interface {
	// Login verifies the credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
}

type ServiceImpl struct {
	logger   *slog.Logger
	username string
	password string
	jwtCfg   config.JWTConfig
}

func NewService(cfg config.Config, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		username: cfg.Admin.Username,
		password: cfg.Admin.Password,
		jwtCfg:   cfg.JWT,
	}
}

func (s *ServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	l := s.logger.With(slog.String("method", "Login"))

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		l.WarnContext(ctx, "Login rejected", slog.String("username", username))
		return "", ErrInvalidCredentials
	}
	if !s.passwordMatches(password) {
		l.WarnContext(ctx, "Login rejected", slog.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	l.InfoContext(ctx, "Admin logged in", slog.String("username", username))
	return token, nil
}

// passwordMatches accepts either a bcrypt hash or a plain value in the
// config. Plain values exist for local development only.
func (s *ServiceImpl) passwordMatches(password string) bool {
	if strings.HasPrefix(s.password, "$2a$") || strings.HasPrefix(s.password, "$2b$") || strings.HasPrefix(s.password, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}

func (s *ServiceImpl) issueToken(username string) (string, error) {
	now := time.Now()
	expiry := s.jwtCfg.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}
