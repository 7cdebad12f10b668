// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
)

// SearchInput carries the raw search parameters as received by the delivery
// layer. Two geographic conventions coexist: the combined Location token
// (matched against city or department) and the separate Region/Department
// pair; both may be present on one request and then apply conjunctively.
type SearchInput struct {
	Term           string
	Type           string
	Location       string
	Region         string
	Department     string
	Arrondissement string
	Limit          int
	Offset         int
	SortBy         string
	UserLat        float64
	UserLon        float64
}

// SearchOutput is one result page plus the total match count across all pages.
type SearchOutput struct {
	TotalCount int64
	Results    []*entity.Establishment
}

// SearchUsecase defines the read side of the directory: the search itself and
// the metadata lists feeding the filter widgets.
type SearchUsecase interface {
	// Search normalizes the input, builds the geographic scopes and runs the
	// query. An out-of-range limit falls back to the default page size and a
	// negative offset to zero.
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// Regions lists the distinct region names present in the store, sorted.
	Regions(ctx context.Context) ([]string, error)

	// Departments lists the distinct department names, sorted.
	Departments(ctx context.Context) ([]string, error)

	// Cities lists the distinct city values that are not arrondissement
	// entries, sorted.
	Cities(ctx context.Context) ([]string, error)

	// Arrondissements lists the arrondissement-formatted city values, sorted
	// by city then by arrondissement number.
	Arrondissements(ctx context.Context) ([]string, error)

	// Locations merges plain cities and departments into one deduplicated
	// sorted list for the combined location picker.
	Locations(ctx context.Context) ([]string, error)
}
