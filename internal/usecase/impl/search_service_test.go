package impl

import (
	"context"
	"testing"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearchService(repo *fakeEstablishmentRepo) usecase.SearchUsecase {
	return NewSearchService(SearchServiceParams{
		EstRepo: repo,
		Logger:  discardLogger(),
	})
}

func TestBuildSearchQueryDefaults(t *testing.T) {
	query := buildSearchQuery(usecase.SearchInput{})

	assert.Equal(t, defaultSearchLimit, query.Limit)
	assert.Zero(t, query.Offset)
	assert.Equal(t, entity.SortNone, query.Sort)
	assert.Empty(t, query.Scopes)
}

func TestBuildSearchQueryNormalizesOutOfRangeValues(t *testing.T) {
	query := buildSearchQuery(usecase.SearchInput{Limit: -5, Offset: -10, SortBy: "rating"})

	assert.Equal(t, defaultSearchLimit, query.Limit)
	assert.Zero(t, query.Offset)
	assert.Equal(t, entity.SortNone, query.Sort)
}

func TestBuildSearchQueryCollectsAllScopes(t *testing.T) {
	query := buildSearchQuery(usecase.SearchInput{
		Term:           "pizza",
		Type:           "restaurant",
		Location:       "Lyon",
		Region:         "Bretagne",
		Department:     "Finistère",
		Arrondissement: "Lyon 2e Arrondissement",
		Limit:          50,
		Offset:         100,
		SortBy:         "distance",
		UserLat:        45.76,
		UserLon:        4.84,
	})

	require.Len(t, query.Scopes, 3)
	assert.Equal(t, entity.CombinedScope("Lyon"), query.Scopes[0])
	assert.Equal(t, entity.RegionDeptScope("Bretagne", "Finistère"), query.Scopes[1])
	assert.Equal(t, entity.ArrondissementScope("Lyon 2e Arrondissement"), query.Scopes[2])
	assert.Equal(t, entity.SortDistance, query.Sort)
	assert.True(t, query.UseDistancePlan())
}

func TestSearchService_Search_DelegatesToRepo(t *testing.T) {
	repo := newFakeEstablishmentRepo()
	repo.searchResults = []*entity.Establishment{{Name: "La Pizzeria"}}
	repo.searchTotal = 37

	out, err := newTestSearchService(repo).Search(context.Background(), usecase.SearchInput{Term: "pizza"})
	require.NoError(t, err)

	assert.Equal(t, int64(37), out.TotalCount)
	require.Len(t, out.Results, 1)

	require.Len(t, repo.searchCalls, 1)
	assert.Equal(t, "pizza", repo.searchCalls[0].Term)
}

func TestSearchService_CitiesExcludesArrondissements(t *testing.T) {
	repo := newFakeEstablishmentRepo()
	repo.cities = []string{
		"Bordeaux",
		"Lyon 2e Arrondissement",
		"Marseille 1er Arrondissement",
		"Paris 11e Arrondissement",
		"Quimper",
	}

	cities, err := newTestSearchService(repo).Cities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bordeaux", "Quimper"}, cities)
}

func TestSearchService_ArrondissementsSortByCityThenNumber(t *testing.T) {
	repo := newFakeEstablishmentRepo()
	// Distinct values arrive lexicographically sorted, which puts 11e before 2e.
	repo.cities = []string{
		"Bordeaux",
		"Paris 11e Arrondissement",
		"Paris 1er Arrondissement",
		"Paris 2e Arrondissement",
		"Lyon 3e Arrondissement",
	}

	arrondissements, err := newTestSearchService(repo).Arrondissements(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Lyon 3e Arrondissement",
		"Paris 1er Arrondissement",
		"Paris 2e Arrondissement",
		"Paris 11e Arrondissement",
	}, arrondissements)
}

func TestSearchService_LocationsMergesCitiesAndDepartments(t *testing.T) {
	repo := newFakeEstablishmentRepo()
	repo.cities = []string{"Brest", "Paris", "Paris 1er Arrondissement"}
	// "Paris" is both a city and a department; it must appear once.
	repo.departments = []string{"Finistère", "Paris"}

	locations, err := newTestSearchService(repo).Locations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Brest", "Finistère", "Paris"}, locations)
}

func TestSearchService_RegionsAndDepartmentsPassThrough(t *testing.T) {
	repo := newFakeEstablishmentRepo()
	repo.regions = []string{"Bretagne", "Île-de-France"}
	repo.departments = []string{"Finistère"}

	svc := newTestSearchService(repo)

	regions, err := svc.Regions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bretagne", "Île-de-France"}, regions)

	departments, err := svc.Departments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Finistère"}, departments)
}
