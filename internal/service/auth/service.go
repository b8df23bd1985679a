// Package auth implements the login gate: one shared password for the whole
// dashboard plus an email whitelist maintained in a spreadsheet tab.
package auth

import (
	"context"
	"log/slog"

	"github.com/alumni-sante/sondage-backend/internal/config"
)

// whitelistFetcher provides the allowed emails, lowercased and trimmed.
type whitelistFetcher interface {
	FetchWhitelist(ctx context.Context) ([]string, error)
}

// jwtManager defines the session token operations needed by the service.
type jwtManager interface {
	GenerateSessionToken(email string) (string, error)
	ValidateSessionToken(token string) (string, error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	whitelist whitelistFetcher
	jwt       jwtManager
	cfg       config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, whitelist whitelistFetcher, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		whitelist: whitelist,
		jwt:       jwt,
		cfg:       cfg,
	}
}

// ValidateToken checks a session token and returns the member's email.
func (s *Service) ValidateToken(token string) (string, error) {
	return s.jwt.ValidateSessionToken(token)
}
