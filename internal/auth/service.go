// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Email     string
	UserID    int64
	SessionID string
	ExpiresAt time.Time
}

type Service struct {
	users      user.Repository
	registry   *Registry
	sessionTTL time.Duration
}

func NewService(
	users user.Repository,
	registry *Registry,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		registry:   registry,
		sessionTTL: sessionTTL,
	}
}

// Login verifies credentials and issues a fresh opaque session token.
// A prior session for the same email is overwritten, so the old token stops
// validating the moment a second login succeeds.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(password, &u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	expiresAt := time.Now().Add(s.sessionTTL)
	s.registry.Put(u.Email, token, expiresAt)

	return &LoginResult{
		Email:     u.Email,
		UserID:    u.ID,
		SessionID: token,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate checks the stored session for email against the supplied token.
func (s *Service) Validate(email, token string) error {
	if !s.registry.Validate(email, token) {
		return fmt.Errorf("validate session: %w", core.ErrUnauthorized)
	}
	return nil
}

// Logout removes any session for email. The supplied token is not compared
// against the stored one, so a client holding a stale token can still clear
// its session.
func (s *Service) Logout(email string) {
	s.registry.Remove(email)
}
