package postgres

import (
	"context"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the postgres-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var rows []model.UserModel

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, userModelToEntity(&rows[i]))
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var row model.UserModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user by id")
	}

	return userModelToEntity(&row), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row model.UserModel

	err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user by username")
	}

	return userModelToEntity(&row), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := &model.UserModel{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}

		return errors.Wrap(err, "create user")
	}

	user.ID = row.ID
	user.CreatedAt = row.CreatedAt

	return nil
}

func userModelToEntity(row *model.UserModel) *entity.User {
	return &entity.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
