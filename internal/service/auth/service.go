// Package auth signs staff users in and manages their accounts.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/y0ngdev/the-bridge/internal/config"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the token operations needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (int64, domain.UserRole, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
	now   func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		now:   time.Now,
	}
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
