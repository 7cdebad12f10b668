package repository

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// List returns all users ordered by creation time, oldest first.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by id.
	// Returns ErrUserNotFound when the id is unknown.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. Returns ErrUsernameTaken on a duplicate
	// username.
	Create(ctx context.Context, user *entity.User) error
}
