// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
)

// ErrEstablishmentNotFound is returned when no establishment matches a lookup.
var ErrEstablishmentNotFound = errors.New("establishment not found")

// EstablishmentRepository defines establishment persistence. The search is
// read-only; mutation happens only through the sync upsert path and the
// administrative bulk deletes.
type EstablishmentRepository interface {
	// Search executes one search query and returns the requested page plus
	// the total number of rows matching the filters (ignoring limit/offset).
	// The implementation dispatches on the query's sort mode: a structured
	// name-ordered plan, or a computed-distance plan that evaluates the
	// planar distance expression inside the store so pagination stays
	// consistent with the count.
	Search(ctx context.Context, query *entity.SearchQuery) ([]*entity.Establishment, int64, error)

	// FindBySourceID retrieves an establishment by its stable external key.
	// Returns ErrEstablishmentNotFound when the key is unknown.
	FindBySourceID(ctx context.Context, sourceID string) (*entity.Establishment, error)

	// Create inserts a new establishment. The creation timestamp is set by
	// the store; the last-update timestamp stays unset.
	Create(ctx context.Context, est *entity.Establishment) error

	// Update overwrites every mapped field of an existing establishment and
	// refreshes its last-update timestamp.
	Update(ctx context.Context, est *entity.Establishment) error

	// Count returns the total number of stored establishments.
	Count(ctx context.Context) (int64, error)

	// Recent returns the most recently created rows, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.Establishment, error)

	// DeleteNameless removes every row with a null or empty name and returns
	// the number of rows removed. Calling it on a clean store is a no-op.
	DeleteNameless(ctx context.Context) (int64, error)

	// DeleteAll removes every row and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)

	// DistinctRegions lists the distinct non-empty region values, sorted.
	DistinctRegions(ctx context.Context) ([]string, error)

	// DistinctDepartments lists the distinct non-empty department values, sorted.
	DistinctDepartments(ctx context.Context) ([]string, error)

	// DistinctCities lists the distinct non-empty city values, sorted.
	// Arrondissement-formatted values are included; callers split them out.
	DistinctCities(ctx context.Context) ([]string, error)
}
