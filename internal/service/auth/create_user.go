package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// CreateUser adds a staff account. Returns ErrAlreadyExists if the email is
// already registered.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Role == "" {
		input.Role = domain.UserRoleStaff
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.CreateUser hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.Int64("user_id", user.ID),
		slog.String("role", user.Role.String()))
	return user, nil
}

// Me returns the signed-in user's account.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
