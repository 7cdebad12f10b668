// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"

	deliverycontext "github.com/BrayanOfficiel/juice-finder/internal/delivery/context"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"go.uber.org/fx"
)

const defaultSearchLimit = 20

// arrondissementPattern recognizes the city values the source uses for the
// districts of Paris, Lyon and Marseille, e.g. "Paris 1er Arrondissement".
var arrondissementPattern = regexp.MustCompile(`(?i)\d+e?r?\s+arrondissement$`)

// arrondissementParts splits such a value into the city prefix and the
// district number for sorting.
var arrondissementParts = regexp.MustCompile(`(?i)^(.+?)\s+(\d+)e?r?\s+arrondissement$`)

// searchService implements the SearchUsecase interface.
type searchService struct {
	estRepo repository.EstablishmentRepository
	logger  *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	EstRepo repository.EstablishmentRepository
	Logger  *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		estRepo: params.EstRepo,
		logger:  params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *searchService) Search(ctx context.Context, input usecase.SearchInput) (*usecase.SearchOutput, error) {
	query := buildSearchQuery(input)

	results, total, err := srv.estRepo.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Search failed",
			slog.String("term", input.Term),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "recherche des établissements")
	}

	return &usecase.SearchOutput{TotalCount: total, Results: results}, nil
}

// buildSearchQuery normalizes raw request parameters into a SearchQuery. All
// supplied geographic filters apply together.
func buildSearchQuery(input usecase.SearchInput) *entity.SearchQuery {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	var scopes []entity.GeoScope
	if input.Location != "" {
		scopes = append(scopes, entity.CombinedScope(input.Location))
	}
	if input.Region != "" || input.Department != "" {
		scopes = append(scopes, entity.RegionDeptScope(input.Region, input.Department))
	}
	if input.Arrondissement != "" {
		scopes = append(scopes, entity.ArrondissementScope(input.Arrondissement))
	}

	return &entity.SearchQuery{
		Term:    input.Term,
		Type:    input.Type,
		Scopes:  scopes,
		Limit:   limit,
		Offset:  offset,
		Sort:    entity.ParseSortBy(input.SortBy),
		UserLat: input.UserLat,
		UserLon: input.UserLon,
	}
}

func (srv *searchService) Regions(ctx context.Context) ([]string, error) {
	values, err := srv.estRepo.DistinctRegions(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des régions")
	}

	return values, nil
}

func (srv *searchService) Departments(ctx context.Context) ([]string, error) {
	values, err := srv.estRepo.DistinctDepartments(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des départements")
	}

	return values, nil
}

func (srv *searchService) Cities(ctx context.Context) ([]string, error) {
	values, err := srv.estRepo.DistinctCities(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des villes")
	}

	return filterOutArrondissements(values), nil
}

func (srv *searchService) Arrondissements(ctx context.Context) ([]string, error) {
	values, err := srv.estRepo.DistinctCities(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des arrondissements")
	}

	arrondissements := make([]string, 0, len(values))
	for _, value := range values {
		if arrondissementPattern.MatchString(value) {
			arrondissements = append(arrondissements, value)
		}
	}
	sortArrondissements(arrondissements)

	return arrondissements, nil
}

func (srv *searchService) Locations(ctx context.Context) ([]string, error) {
	cities, err := srv.estRepo.DistinctCities(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des localités")
	}

	departments, err := srv.estRepo.DistinctDepartments(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des localités")
	}

	seen := make(map[string]struct{}, len(cities)+len(departments))
	locations := make([]string, 0, len(cities)+len(departments))
	for _, value := range filterOutArrondissements(cities) {
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			locations = append(locations, value)
		}
	}
	for _, value := range departments {
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			locations = append(locations, value)
		}
	}
	sort.Strings(locations)

	return locations, nil
}

func filterOutArrondissements(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if !arrondissementPattern.MatchString(value) {
			out = append(out, value)
		}
	}

	return out
}

// sortArrondissements orders by city name, then by district number, so
// "Paris 2e" lands before "Paris 11e" despite the lexicographic order.
func sortArrondissements(values []string) {
	type parsed struct {
		city string
		num  int
	}

	parse := func(value string) parsed {
		match := arrondissementParts.FindStringSubmatch(value)
		if match == nil {
			return parsed{city: value}
		}
		num, _ := strconv.Atoi(match[2])

		return parsed{city: match[1], num: num}
	}

	sort.Slice(values, func(i, j int) bool {
		a, b := parse(values[i]), parse(values[j])
		if a.city != b.city {
			return a.city < b.city
		}

		return a.num < b.num
	})
}
