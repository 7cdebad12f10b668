// Package postgres provides the GORM-backed implementations of the domain
// repository interfaces.
package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// distanceExpr is the planar distance in kilometres between the user position
// and a stored coordinate pair. Placeholders: userLat, userLat, userLon. The
// same approximation is mirrored by entity.PlanarDistanceKm; the two must
// stay in sync.
const distanceExpr = "(111.045 * SQRT(POW(lat - ?, 2) + POW(COS(RADIANS(?)) * (lon - ?), 2)))"

type establishmentRepository struct {
	db *gorm.DB
}

// NewEstablishmentRepository creates the postgres-backed establishment repository.
func NewEstablishmentRepository(db *gorm.DB) repository.EstablishmentRepository {
	return &establishmentRepository{db: db}
}

// buildSearchConditions translates a search query into a WHERE fragment and
// its arguments, shared by both query plans. Every search excludes unnamed
// rows, so the name predicate is always present.
func buildSearchConditions(query *entity.SearchQuery) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 8)

	if query.Term != "" {
		conds = append(conds, "name IS NOT NULL AND name <> '' AND name ILIKE ?")
		args = append(args, "%"+query.Term+"%")
	} else {
		conds = append(conds, "name IS NOT NULL AND name <> ''")
	}

	if query.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, query.Type)
	}

	for _, scope := range query.Scopes {
		switch scope.Kind {
		case entity.GeoScopeCombined:
			conds = append(conds, "(city = ? OR department = ?)")
			args = append(args, scope.Token, scope.Token)
		case entity.GeoScopeRegionDept:
			if scope.Region != "" {
				conds = append(conds, "region = ?")
				args = append(args, scope.Region)
			}
			if scope.Department != "" {
				conds = append(conds, "department = ?")
				args = append(args, scope.Department)
			}
		case entity.GeoScopeArrondissement:
			conds = append(conds, "city = ?")
			args = append(args, scope.City)
		}
	}

	return strings.Join(conds, " AND "), args
}

func (r *establishmentRepository) Search(ctx context.Context, query *entity.SearchQuery) ([]*entity.Establishment, int64, error) {
	if query.UseDistancePlan() {
		return r.searchByDistance(ctx, query)
	}

	return r.searchByName(ctx, query)
}

// searchByName is the structured plan: filter, count, then page ordered by
// name. SortNone and SortName behave identically.
func (r *establishmentRepository) searchByName(ctx context.Context, query *entity.SearchQuery) ([]*entity.Establishment, int64, error) {
	where, args := buildSearchConditions(query)

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.EstablishmentModel{}).Where(where, args...)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count establishments")
	}

	var rows []model.EstablishmentModel
	err := base().
		Order("name ASC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "search establishments by name")
	}

	return establishmentModelsToEntities(rows), total, nil
}

// buildDistanceQueries assembles the raw count and page statements for the
// computed-distance plan. Rows without a full coordinate pair are excluded
// entirely rather than sorted last. The page placeholders run expression
// args first (userLat, userLat, userLon), then the shared conditions, then
// limit and offset.
func buildDistanceQueries(query *entity.SearchQuery) (countSQL string, countArgs []any, pageSQL string, pageArgs []any) {
	where, condArgs := buildSearchConditions(query)
	where += " AND lat IS NOT NULL AND lon IS NOT NULL"

	countSQL = "SELECT COUNT(*) FROM establishments WHERE " + where

	pageSQL = "SELECT *, " + distanceExpr + " AS distance FROM establishments WHERE " + where +
		" ORDER BY distance ASC LIMIT ? OFFSET ?"

	pageArgs = make([]any, 0, len(condArgs)+5)
	pageArgs = append(pageArgs, query.UserLat, query.UserLat, query.UserLon)
	pageArgs = append(pageArgs, condArgs...)
	pageArgs = append(pageArgs, query.Limit, query.Offset)

	return countSQL, condArgs, pageSQL, pageArgs
}

// searchByDistance is the computed-distance plan: the ordering expression is
// evaluated inside the store so the page boundaries line up with the count.
func (r *establishmentRepository) searchByDistance(ctx context.Context, query *entity.SearchQuery) ([]*entity.Establishment, int64, error) {
	countSQL, countArgs, pageSQL, pageArgs := buildDistanceQueries(query)

	var total int64
	if err := r.db.WithContext(ctx).Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count establishments for distance search")
	}

	var rows []model.EstablishmentModel
	if err := r.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "search establishments by distance")
	}

	return establishmentModelsToEntities(rows), total, nil
}

func (r *establishmentRepository) FindBySourceID(ctx context.Context, sourceID string) (*entity.Establishment, error) {
	var row model.EstablishmentModel

	err := r.db.WithContext(ctx).Where("source_id = ?", sourceID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "find establishment by source id")
	}

	return establishmentModelToEntity(&row), nil
}

func (r *establishmentRepository) Create(ctx context.Context, est *entity.Establishment) error {
	row := establishmentEntityToModel(est)
	row.LastUpdate = nil

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(err, "create establishment")
	}

	est.ID = row.ID
	est.CreatedAt = row.CreatedAt

	return nil
}

func (r *establishmentRepository) Update(ctx context.Context, est *entity.Establishment) error {
	row := establishmentEntityToModel(est)
	now := time.Now()
	row.LastUpdate = &now

	// Select("*") forces zero values through so a field cleared upstream is
	// cleared in the store as well.
	result := r.db.WithContext(ctx).
		Model(&model.EstablishmentModel{}).
		Where("source_id = ?", est.SourceID).
		Select("*").
		Omit("id", "source_id", "created_at").
		Updates(row)
	if result.Error != nil {
		return errors.Wrap(result.Error, "update establishment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEstablishmentNotFound
	}

	est.LastUpdate = &now

	return nil
}

func (r *establishmentRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.EstablishmentModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "count establishments")
	}

	return total, nil
}

func (r *establishmentRepository) Recent(ctx context.Context, limit int) ([]*entity.Establishment, error) {
	var rows []model.EstablishmentModel

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list recent establishments")
	}

	return establishmentModelsToEntities(rows), nil
}

func (r *establishmentRepository) DeleteNameless(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("name IS NULL OR name = ''").
		Delete(&model.EstablishmentModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete nameless establishments")
	}

	return result.RowsAffected, nil
}

func (r *establishmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.EstablishmentModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete all establishments")
	}

	return result.RowsAffected, nil
}

func (r *establishmentRepository) DistinctRegions(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "region")
}

func (r *establishmentRepository) DistinctDepartments(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "department")
}

func (r *establishmentRepository) DistinctCities(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "city")
}

func (r *establishmentRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string

	err := r.db.WithContext(ctx).
		Model(&model.EstablishmentModel{}).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Order(column + " ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list distinct %s values", column)
	}

	return values, nil
}

func establishmentModelsToEntities(rows []model.EstablishmentModel) []*entity.Establishment {
	out := make([]*entity.Establishment, 0, len(rows))
	for i := range rows {
		out = append(out, establishmentModelToEntity(&rows[i]))
	}

	return out
}

func establishmentModelToEntity(row *model.EstablishmentModel) *entity.Establishment {
	name := ""
	if row.Name != nil {
		name = *row.Name
	}

	return &entity.Establishment{
		ID:             row.ID,
		SourceID:       row.SourceID,
		Name:           name,
		Type:           row.Type,
		Cuisine:        row.Cuisine,
		Phone:          row.Phone,
		Website:        row.Website,
		Email:          row.Email,
		Street:         row.Street,
		Housenumber:    row.Housenumber,
		Postcode:       row.Postcode,
		City:           row.City,
		Department:     row.Department,
		Region:         row.Region,
		OpeningHours:   row.OpeningHours,
		Wheelchair:     row.Wheelchair,
		Delivery:       row.Delivery,
		Takeaway:       row.Takeaway,
		OutdoorSeating: row.OutdoorSeating,
		Latitude:       row.Lat,
		Longitude:      row.Lon,
		OSMID:          row.OSMID,
		CreatedAt:      row.CreatedAt,
		LastUpdate:     row.LastUpdate,
	}
}

func establishmentEntityToModel(est *entity.Establishment) *model.EstablishmentModel {
	var name *string
	if est.Name != "" {
		name = &est.Name
	}

	return &model.EstablishmentModel{
		ID:             est.ID,
		SourceID:       est.SourceID,
		Name:           name,
		Type:           est.Type,
		Cuisine:        est.Cuisine,
		Phone:          est.Phone,
		Website:        est.Website,
		Email:          est.Email,
		Street:         est.Street,
		Housenumber:    est.Housenumber,
		Postcode:       est.Postcode,
		City:           est.City,
		Department:     est.Department,
		Region:         est.Region,
		OpeningHours:   est.OpeningHours,
		Wheelchair:     est.Wheelchair,
		Delivery:       est.Delivery,
		Takeaway:       est.Takeaway,
		OutdoorSeating: est.OutdoorSeating,
		Lat:            est.Latitude,
		Lon:            est.Longitude,
		OSMID:          est.OSMID,
		CreatedAt:      est.CreatedAt,
		LastUpdate:     est.LastUpdate,
	}
}
