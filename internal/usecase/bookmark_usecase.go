package usecase

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
)

// BookmarkUsecase manages the two per-user establishment lists: bookmarks and
// the archive. The two relations are independent; an establishment may sit in
// both at once.
type BookmarkUsecase interface {
	// Bookmarks returns the user's bookmarked establishments, newest first.
	Bookmarks(ctx context.Context, userID int64) ([]*entity.Bookmark, error)

	// AddBookmark pins an establishment for the user.
	AddBookmark(ctx context.Context, userID, establishmentID int64) (*entity.Bookmark, error)

	// RemoveBookmark unpins an establishment.
	RemoveBookmark(ctx context.Context, userID, establishmentID int64) error

	// Archived returns the user's archived establishments, newest first.
	Archived(ctx context.Context, userID int64) ([]*entity.Archive, error)

	// AddArchive tucks an establishment away for the user.
	AddArchive(ctx context.Context, userID, establishmentID int64) (*entity.Archive, error)

	// RemoveArchive takes an establishment out of the archive.
	RemoveArchive(ctx context.Context, userID, establishmentID int64) error
}
