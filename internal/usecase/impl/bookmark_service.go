package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/BrayanOfficiel/juice-finder/internal/delivery/context"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"go.uber.org/fx"
)

// bookmarkService implements the BookmarkUsecase interface over the two
// per-user relations.
type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	archiveRepo  repository.ArchiveRepository
	logger       *slog.Logger
}

// BookmarkServiceParams holds dependencies for bookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	BookmarkRepo repository.BookmarkRepository
	ArchiveRepo  repository.ArchiveRepository
	Logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo: params.BookmarkRepo,
		archiveRepo:  params.ArchiveRepo,
		logger:       params.Logger,
	}
}

func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *bookmarkService) Bookmarks(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	bookmarks, err := srv.bookmarkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des favoris")
	}

	return bookmarks, nil
}

func (srv *bookmarkService) AddBookmark(ctx context.Context, userID, establishmentID int64) (*entity.Bookmark, error) {
	bookmark := &entity.Bookmark{UserID: userID, EstablishmentID: establishmentID}

	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookmarkExists):
			return nil, domainerrors.ErrBookmarkExists
		case errors.Is(err, repository.ErrEstablishmentNotFound):
			return nil, domainerrors.ErrEstablishmentNotFound
		default:
			return nil, domainerrors.NewDatabaseExecuteError(err, "ajout du favori")
		}
	}

	srv.log(ctx).Info("Bookmark added",
		slog.Int64("userID", userID),
		slog.Int64("establishmentID", establishmentID),
	)

	return bookmark, nil
}

func (srv *bookmarkService) RemoveBookmark(ctx context.Context, userID, establishmentID int64) error {
	err := srv.bookmarkRepo.Delete(ctx, userID, establishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return domainerrors.ErrBookmarkNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "suppression du favori")
	}

	return nil
}

func (srv *bookmarkService) Archived(ctx context.Context, userID int64) ([]*entity.Archive, error) {
	archives, err := srv.archiveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "liste des archives")
	}

	return archives, nil
}

func (srv *bookmarkService) AddArchive(ctx context.Context, userID, establishmentID int64) (*entity.Archive, error) {
	archive := &entity.Archive{UserID: userID, EstablishmentID: establishmentID}

	if err := srv.archiveRepo.Create(ctx, archive); err != nil {
		switch {
		case errors.Is(err, repository.ErrArchiveExists):
			return nil, domainerrors.ErrArchiveExists
		case errors.Is(err, repository.ErrEstablishmentNotFound):
			return nil, domainerrors.ErrEstablishmentNotFound
		default:
			return nil, domainerrors.NewDatabaseExecuteError(err, "ajout à l'archive")
		}
	}

	srv.log(ctx).Info("Archive entry added",
		slog.Int64("userID", userID),
		slog.Int64("establishmentID", establishmentID),
	)

	return archive, nil
}

func (srv *bookmarkService) RemoveArchive(ctx context.Context, userID, establishmentID int64) error {
	err := srv.archiveRepo.Delete(ctx, userID, establishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrArchiveNotFound) {
			return domainerrors.ErrArchiveNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "retrait de l'archive")
	}

	return nil
}
