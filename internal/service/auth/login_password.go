package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// LoginWithPassword authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword get user: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password",
		slog.Int64("user_id", user.ID),
		slog.String("role", user.Role.String()))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   s.now().Add(s.cfg.AccessTokenTTL),
		User:        user,
	}, nil
}

// ValidateToken checks an access token and returns the user ID and role.
// Any validation failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (int64, domain.UserRole, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return 0, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}
