package postgres

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates the postgres-backed bookmark repository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	var rows []model.BookmarkModel

	err := r.db.WithContext(ctx).
		Preload("Establishment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list bookmarks")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(rows))
	for i := range rows {
		bookmarks = append(bookmarks, bookmarkModelToEntity(&rows[i]))
	}

	return bookmarks, nil
}

func (r *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	row := &model.BookmarkModel{
		UserID:          bookmark.UserID,
		EstablishmentID: bookmark.EstablishmentID,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrBookmarkExists
		case isForeignKeyConstraintViolation(err):
			return repository.ErrEstablishmentNotFound
		default:
			return errors.Wrap(err, "create bookmark")
		}
	}

	bookmark.ID = row.ID
	bookmark.CreatedAt = row.CreatedAt

	return nil
}

func (r *bookmarkRepository) Delete(ctx context.Context, userID, establishmentID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND establishment_id = ?", userID, establishmentID).
		Delete(&model.BookmarkModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

func bookmarkModelToEntity(row *model.BookmarkModel) *entity.Bookmark {
	bookmark := &entity.Bookmark{
		ID:              row.ID,
		UserID:          row.UserID,
		EstablishmentID: row.EstablishmentID,
		CreatedAt:       row.CreatedAt,
	}
	if row.Establishment != nil {
		bookmark.Establishment = establishmentModelToEntity(row.Establishment)
	}

	return bookmark
}
