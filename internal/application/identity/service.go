// Package identity holds the admin login service. The site has a single
// operator account configured at deploy time; there is no user table.
package identity

import (
	"context"
	"crypto/subtle"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/auth"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/config"
)

// ErrBadCredentials is returned for any username/password mismatch.
var ErrBadCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")

// LoginResult carries the issued token and its lifetime.
type LoginResult struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service handles admin login, logout, and session checks.
type Service struct {
	admin    config.AdminConfig
	jwt      *auth.JWTService
	sessions auth.SessionStore
	logger   *zap.Logger
}

// NewService creates a new identity Service
func NewService(admin config.AdminConfig, jwt *auth.JWTService, sessions auth.SessionStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		admin:    admin,
		jwt:      jwt,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies the credentials and opens a session. The bcrypt hash is
// preferred when configured; the plaintext password setting exists for
// local development only.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if !s.verify(username, password) {
		s.logger.Warn("failed admin login attempt", zap.String("username", username))
		return nil, ErrBadCredentials
	}

	token, sessionID, expiresAt, err := s.jwt.Generate(username)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, &auth.Session{
		ID:        sessionID,
		Username:  username,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in", zap.String("username", username))
	return &LoginResult{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the session behind a token. An already-invalid token is
// treated as logged out.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// Verify checks a bearer token against both its signature and the live
// session registry, returning the claims when valid.
func (s *Service) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, shared.ErrUnauthorized
	}

	return claims, nil
}

func (s *Service) verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) != 1 {
		return false
	}

	if s.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	}
	if s.admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
}
