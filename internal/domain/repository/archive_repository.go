package repository

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
)

// Domain-specific errors for the per-user archive relation.
var (
	// ErrArchiveExists is returned when the user already archived the establishment.
	ErrArchiveExists = errors.New("archive entry already exists")
	// ErrArchiveNotFound is returned when no such archive entry exists.
	ErrArchiveNotFound = errors.New("archive entry not found")
)

// ArchiveRepository defines the interface for archive persistence. It mirrors
// BookmarkRepository over a separate relation.
type ArchiveRepository interface {
	// ListByUser returns the user's archived establishments, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Archive, error)

	// Create adds an archive entry. Returns ErrArchiveExists on a duplicate
	// pair and ErrEstablishmentNotFound / ErrUserNotFound on a dangling
	// reference.
	Create(ctx context.Context, archive *entity.Archive) error

	// Delete removes the archive entry for the given pair. Returns
	// ErrArchiveNotFound when there is nothing to remove.
	Delete(ctx context.Context, userID, establishmentID int64) error
}
