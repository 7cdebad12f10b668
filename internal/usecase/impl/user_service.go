package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/BrayanOfficiel/juice-finder/internal/delivery/context"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/service"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) List(ctx context.Context) ([]*usecase.UserSummary, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des profils")
	}

	summaries := make([]*usecase.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, toUserSummary(user))
	}

	return summaries, nil
}

func (srv *userService) Create(ctx context.Context, username, password string) (*usecase.UserSummary, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domainerrors.ErrUsernameRequired
	}

	user := &entity.User{Username: username}

	if password != "" {
		hash, err := srv.hasher.Hash(password)
		if err != nil {
			srv.log(ctx).Error("Password hashing failed", slog.String("error", err.Error()))

			return nil, domainerrors.ErrPasswordHashFailed
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "création du profil")
	}

	srv.log(ctx).Info("Profile created",
		slog.Int64("userID", user.ID),
		slog.String("username", user.Username),
		slog.Bool("hasPassword", user.HasPassword()),
	)

	return toUserSummary(user), nil
}

// Login verifies the selected profile's password. Profiles without a password
// sign in unconditionally, any supplied password is ignored; profiles with
// one reject both a missing and a wrong password.
func (srv *userService) Login(ctx context.Context, userID int64, password string) (*usecase.Session, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "recherche du profil")
	}

	if !user.HasPassword() {
		return &usecase.Session{UserID: user.ID, Username: user.Username}, nil
	}

	if password == "" {
		return nil, domainerrors.ErrPasswordRequired
	}
	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidPassword
	}

	return &usecase.Session{UserID: user.ID, Username: user.Username}, nil
}

func toUserSummary(user *entity.User) *usecase.UserSummary {
	return &usecase.UserSummary{
		ID:          user.ID,
		Username:    user.Username,
		CreatedAt:   user.CreatedAt,
		HasPassword: user.HasPassword(),
	}
}
