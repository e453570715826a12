package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/roosly/site-api/internal/pkg/metrics"
	"github.com/roosly/site-api/internal/core/domain"
	"github.com/roosly/site-api/internal/core/ports"
	"github.com/roosly/site-api/pkg/password"
	"github.com/roosly/site-api/pkg/session"
)

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	repo   ports.AuthRepository
	hasher *password.Hasher
	issuer *session.Issuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher *password.Hasher, issuer *session.Issuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer, logger: logger}
}

// Login looks the user up by exact email, verifies the password and returns
// a signed session token plus the user. Every failure mode — unknown email,
// wrong password, store error — collapses into ErrInvalidCredentials so the
// caller cannot enumerate accounts; the distinction is logged here only.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("email", email).Msg("login failed: no such user")
		} else {
			s.logger.Error().Err(err).Str("email", email).Msg("login failed: user lookup error")
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info().Str("email", email).Msg("login failed: password mismatch")
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(session.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("login failed: token signing error")
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("email", email).Str("role", user.Role).Msg("login succeeded")
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}
