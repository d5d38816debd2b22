// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"prospera/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.User, error)
	// GetUserByUsername retrieves a user by their (lowercase) username.
	GetUserByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// GetUserByEmail retrieves a user by their (lowercase) email.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
}
