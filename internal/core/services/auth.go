package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService manages the account session. Credentials are validated
// locally before any network call.
type AuthService struct {
	gateway  driven.BackendGateway
	sessions driven.SessionStore
}

// NewAuthService creates a new auth service.
func NewAuthService(gateway driven.BackendGateway, sessions driven.SessionStore) *AuthService {
	return &AuthService{gateway: gateway, sessions: sessions}
}

// Login exchanges credentials for a session and persists it.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	session, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.sessions.Save(ctx, *session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	logger.Info("logged in as %s", session.User.Email)
	return session, nil
}

// Register creates an account. The password policy is enforced locally
// so obviously rejectable credentials never reach the wire.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); err != nil {
		return err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return err
	}

	if err := s.gateway.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Session returns the persisted session, or domain.ErrAuthRequired if
// none is stored.
func (s *AuthService) Session(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthRequired
		}
		return nil, err
	}
	return session, nil
}
