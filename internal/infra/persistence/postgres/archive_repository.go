package postgres

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository creates the postgres-backed archive repository.
func NewArchiveRepository(db *gorm.DB) repository.ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Archive, error) {
	var rows []model.ArchiveModel

	err := r.db.WithContext(ctx).
		Preload("Establishment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list archive entries")
	}

	archives := make([]*entity.Archive, 0, len(rows))
	for i := range rows {
		archives = append(archives, archiveModelToEntity(&rows[i]))
	}

	return archives, nil
}

func (r *archiveRepository) Create(ctx context.Context, archive *entity.Archive) error {
	row := &model.ArchiveModel{
		UserID:          archive.UserID,
		EstablishmentID: archive.EstablishmentID,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrArchiveExists
		case isForeignKeyConstraintViolation(err):
			return repository.ErrEstablishmentNotFound
		default:
			return errors.Wrap(err, "create archive entry")
		}
	}

	archive.ID = row.ID
	archive.CreatedAt = row.CreatedAt

	return nil
}

func (r *archiveRepository) Delete(ctx context.Context, userID, establishmentID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND establishment_id = ?", userID, establishmentID).
		Delete(&model.ArchiveModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete archive entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArchiveNotFound
	}

	return nil
}

func archiveModelToEntity(row *model.ArchiveModel) *entity.Archive {
	archive := &entity.Archive{
		ID:              row.ID,
		UserID:          row.UserID,
		EstablishmentID: row.EstablishmentID,
		CreatedAt:       row.CreatedAt,
	}
	if row.Establishment != nil {
		archive.Establishment = establishmentModelToEntity(row.Establishment)
	}

	return archive
}
