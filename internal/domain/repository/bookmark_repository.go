package repository

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
)

// Domain-specific errors for the per-user bookmark relation.
var (
	// ErrBookmarkExists is returned when the user already bookmarked the establishment.
	ErrBookmarkExists = errors.New("bookmark already exists")
	// ErrBookmarkNotFound is returned when no such bookmark exists.
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

// BookmarkRepository defines the interface for bookmark persistence.
// Bookmarks are unique per (user, establishment) pair.
type BookmarkRepository interface {
	// ListByUser returns the user's bookmarks with the establishment joined,
	// newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Bookmark, error)

	// Create adds a bookmark. Returns ErrBookmarkExists on a duplicate pair
	// and ErrEstablishmentNotFound / ErrUserNotFound on a dangling reference.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// Delete removes the bookmark for the given pair. Returns
	// ErrBookmarkNotFound when there is nothing to remove.
	Delete(ctx context.Context, userID, establishmentID int64) error
}
