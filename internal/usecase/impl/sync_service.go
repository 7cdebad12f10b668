package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BrayanOfficiel/juice-finder/config"
	deliverycontext "github.com/BrayanOfficiel/juice-finder/internal/delivery/context"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/service"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// excludedRegions lists the overseas territories the directory leaves out.
// The names must match the dataset's meta_name_reg values exactly.
var excludedRegions = map[string]struct{}{
	"Guadeloupe":                   {},
	"Martinique":                   {},
	"Guyane":                       {},
	"La Réunion":                   {},
	"Mayotte":                      {},
	"Saint-Pierre-et-Miquelon":     {},
	"Wallis-et-Futuna":             {},
	"Polynésie française":          {},
	"Nouvelle-Calédonie":           {},
	"Saint-Barthélemy":             {},
	"Saint-Martin":                 {},
	"Collectivité de Saint-Martin": {},
	"Terres australes et antarctiques françaises": {},
}

// syncService implements the SyncUsecase interface.
type syncService struct {
	estRepo repository.EstablishmentRepository
	source  service.FoodServiceSource
	cfg     *config.OpenDataConfig
	logger  *slog.Logger
}

// SyncServiceParams holds dependencies for syncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	EstRepo repository.EstablishmentRepository
	Source  service.FoodServiceSource
	Config  *config.Config
	Logger  *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		estRepo: params.EstRepo,
		source:  params.Source,
		cfg:     params.Config.OpenData,
		logger:  params.Logger,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RunBulk downloads the complete export and reconciles every valid record.
// Per-record failures are counted and logged, never fatal.
func (srv *syncService) RunBulk(ctx context.Context) (*usecase.SyncStats, error) {
	srv.log(ctx).Info("Starting bulk sync")

	records, err := srv.source.FetchExport(ctx)
	if err != nil {
		return nil, domainerrors.NewSourceFetchError(err, "téléchargement de l'export complet")
	}

	stats := &usecase.SyncStats{Fetched: len(records)}

	batchSize := srv.cfg.BatchSize
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		srv.processBatch(ctx, records[start:end], stats)

		srv.log(ctx).Info("Bulk sync progress",
			slog.Int("processed", end),
			slog.Int("fetched", stats.Fetched),
			slog.Int("inserted", stats.Inserted),
			slog.Int("updated", stats.Updated),
			slog.Int("errors", stats.Errors),
		)
	}

	return srv.finishRun(ctx, "bulk", stats)
}

// RunPaginated walks the records endpoint page by page. The walk stops on an
// empty page, when the reported total is exhausted, or at the upstream
// pagination ceiling, whichever comes first.
func (srv *syncService) RunPaginated(ctx context.Context) (*usecase.SyncStats, error) {
	srv.log(ctx).Info("Starting paginated sync",
		slog.Int("pageSize", srv.cfg.PageSize),
		slog.Int("offsetCeiling", srv.cfg.OffsetCeiling),
	)

	stats := &usecase.SyncStats{}

	for offset := 0; offset < srv.cfg.OffsetCeiling; offset += srv.cfg.PageSize {
		if offset > 0 {
			if err := sleepContext(ctx, srv.cfg.PageDelay); err != nil {
				return nil, err
			}
		}

		page, err := srv.source.FetchPage(ctx, srv.cfg.PageSize, offset)
		if err != nil {
			return nil, domainerrors.NewSourceFetchError(err, fmt.Sprintf("page à l'offset %d", offset))
		}
		if len(page.Results) == 0 {
			break
		}

		stats.Fetched += len(page.Results)
		srv.processBatch(ctx, page.Results, stats)

		srv.log(ctx).Info("Paginated sync progress",
			slog.Int("offset", offset),
			slog.Int("fetched", stats.Fetched),
			slog.Int("totalCount", page.TotalCount),
		)

		if offset+len(page.Results) >= page.TotalCount {
			break
		}
	}

	return srv.finishRun(ctx, "paginated", stats)
}

func (srv *syncService) finishRun(ctx context.Context, mode string, stats *usecase.SyncStats) (*usecase.SyncStats, error) {
	total, err := srv.estRepo.Count(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "comptage après synchronisation")
	}
	stats.Total = total

	srv.log(ctx).Info("Sync finished",
		slog.String("mode", mode),
		slog.Int("fetched", stats.Fetched),
		slog.Int("inserted", stats.Inserted),
		slog.Int("updated", stats.Updated),
		slog.Int("errors", stats.Errors),
		slog.Int64("total", stats.Total),
	)

	return stats, nil
}

// processBatch reconciles one slice of records. Invalid records are skipped
// silently; storage failures increment the error counter.
func (srv *syncService) processBatch(ctx context.Context, records []service.SourceRecord, stats *usecase.SyncStats) {
	for i := range records {
		record := &records[i]
		if !recordValid(record) {
			continue
		}

		if err := srv.upsertRecord(ctx, record, stats); err != nil {
			stats.Errors++
			srv.log(ctx).Warn("Record upsert failed",
				slog.String("name", record.Name),
				slog.String("city", record.MetaNameCom),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (srv *syncService) upsertRecord(ctx context.Context, record *service.SourceRecord, stats *usecase.SyncStats) error {
	key := deriveSourceKey(record)
	est := mapSourceRecord(record, key)

	existing, err := srv.estRepo.FindBySourceID(ctx, key)
	switch {
	case err == nil:
		est.ID = existing.ID
		if err := srv.estRepo.Update(ctx, est); err != nil {
			return err
		}
		stats.Updated++
	case errors.Is(err, repository.ErrEstablishmentNotFound):
		if err := srv.estRepo.Create(ctx, est); err != nil {
			return err
		}
		stats.Inserted++
	default:
		return err
	}

	return nil
}

// recordValid keeps only listable records: a name, at least one contact
// channel, and a metropolitan region.
func recordValid(record *service.SourceRecord) bool {
	if strings.TrimSpace(record.Name) == "" || !record.HasContact() {
		return false
	}
	_, excluded := excludedRegions[record.MetaNameReg]

	return !excluded
}

// deriveSourceKey returns the stable upsert key: the native OSM id when
// present, otherwise a synthesized one. Synthesized keys embed the time and a
// random component, so OSM-less records never collide but also never
// deduplicate across runs.
func deriveSourceKey(record *service.SourceRecord) string {
	if record.MetaOSMID != "" {
		return record.MetaOSMID
	}

	return fmt.Sprintf("manual-%s-%s-%d-%s",
		record.Name, record.MetaNameCom, time.Now().UnixMilli(), uuid.New().String())
}

// mapSourceRecord flattens one source record into the stored shape. The
// commune code wins over the sparse bare postcode field.
func mapSourceRecord(record *service.SourceRecord, key string) *entity.Establishment {
	postcode := record.MetaCodeCom
	if postcode == "" {
		postcode = record.Postcode
	}

	est := &entity.Establishment{
		SourceID:       key,
		Name:           strings.TrimSpace(record.Name),
		Type:           record.Type,
		Cuisine:        record.Cuisine.Join(),
		Phone:          record.Phone,
		Website:        record.Website,
		Email:          record.Email,
		Street:         record.Street,
		Housenumber:    record.Housenumber,
		Postcode:       postcode,
		City:           record.MetaNameCom,
		Department:     record.MetaNameDep,
		Region:         record.MetaNameReg,
		OpeningHours:   record.OpeningHours,
		Wheelchair:     record.Wheelchair,
		Delivery:       record.Delivery,
		Takeaway:       record.Takeaway,
		OutdoorSeating: record.OutdoorSeating,
		OSMID:          record.MetaOSMID,
	}

	if record.MetaGeoPoint != nil {
		lat, lon := record.MetaGeoPoint.Lat, record.MetaGeoPoint.Lon
		est.Latitude = &lat
		est.Longitude = &lon
	}

	return est
}

func (srv *syncService) Cleanup(ctx context.Context) (int64, int64, error) {
	deleted, err := srv.estRepo.DeleteNameless(ctx)
	if err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "nettoyage des fiches sans nom")
	}

	remaining, err := srv.estRepo.Count(ctx)
	if err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "comptage après nettoyage")
	}

	srv.log(ctx).Info("Cleanup finished",
		slog.Int64("deleted", deleted),
		slog.Int64("remaining", remaining),
	)

	return deleted, remaining, nil
}

func (srv *syncService) Reset(ctx context.Context) (int64, error) {
	deleted, err := srv.estRepo.DeleteAll(ctx)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "vidage de l'annuaire")
	}

	srv.log(ctx).Warn("Store reset", slog.Int64("deleted", deleted))

	return deleted, nil
}

func (srv *syncService) Recent(ctx context.Context, limit int) ([]*entity.Establishment, int64, error) {
	recent, err := srv.estRepo.Recent(ctx, limit)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "liste des fiches récentes")
	}

	total, err := srv.estRepo.Count(ctx)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "comptage de l'annuaire")
	}

	return recent, total, nil
}

// sleepContext pauses between page fetches while staying cancellable.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
