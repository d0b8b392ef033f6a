package repositories

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail matches case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers lists users newest first. A non-empty email narrows the list to that address.
	FindUsers(ctx context.Context, email string) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
