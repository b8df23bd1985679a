package auth

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/alumni-sante/sondage-backend/internal/domain"
)

// LoginInput carries the login request payload.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks the input shape. Whitelist membership is checked later.
func (in LoginInput) Validate() error {
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if in.Password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return nil
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token string
	Email string
}

// Login authenticates a member. The shared password is checked against the
// configured bcrypt hash (ErrUnauthorized on mismatch), then the email must
// appear in the whitelist tab (ErrForbidden otherwise).
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	emails, err := s.whitelist.FetchWhitelist(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "whitelist fetch failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: whitelist unavailable", domain.ErrUnavailable)
	}

	if !slices.Contains(emails, strings.ToLower(input.Email)) {
		return nil, domain.ErrForbidden
	}

	token, err := s.jwt.GenerateSessionToken(input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "member logged in", slog.String("email", input.Email))

	return &LoginResult{Token: token, Email: input.Email}, nil
}
