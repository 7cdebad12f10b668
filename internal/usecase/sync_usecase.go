package usecase

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
)

// SyncStats summarizes one sync run. Errors counts records that were fetched
// but could not be stored; they never abort the run.
type SyncStats struct {
	Fetched  int   `json:"fetched"`
	Inserted int   `json:"inserted"`
	Updated  int   `json:"updated"`
	Errors   int   `json:"errors"`
	Total    int64 `json:"total"` // Store size after the run.
}

// SyncUsecase drives the reconciliation of the local store against the
// upstream open data source, plus the administrative maintenance operations.
type SyncUsecase interface {
	// RunBulk downloads the full export and upserts every valid record.
	RunBulk(ctx context.Context) (*SyncStats, error)

	// RunPaginated walks the offset-based records endpoint page by page,
	// pausing between pages, and upserts every valid record. The walk stops
	// at the source's pagination ceiling even when more records exist.
	RunPaginated(ctx context.Context) (*SyncStats, error)

	// Cleanup removes nameless rows and reports how many were deleted and
	// how many remain.
	Cleanup(ctx context.Context) (deleted, remaining int64, err error)

	// Reset empties the establishment store.
	Reset(ctx context.Context) (int64, error)

	// Recent returns the most recently created rows together with the store
	// size, for inspection.
	Recent(ctx context.Context, limit int) ([]*entity.Establishment, int64, error)
}
