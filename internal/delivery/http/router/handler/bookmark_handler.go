package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/middleware"
	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/response"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookmarkHandler serves the per-user bookmark and archive lists. Every route
// sits behind the X-User-Id middleware.
type BookmarkHandler struct {
	uc     usecase.BookmarkUsecase
	logger *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler, injected by Fx.
func NewBookmarkHandler(uc usecase.BookmarkUsecase, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		uc:     uc,
		logger: logger,
	}
}

type addEntryInput struct {
	RestaurantID int64 `json:"restaurant_id"`
}

// entryResponse is one bookmark or archive row, with the establishment
// joined when it was loaded.
type entryResponse struct {
	ID           int64                  `json:"id"`
	RestaurantID int64                  `json:"restaurant_id"`
	CreatedAt    time.Time              `json:"created_at"`
	Restaurant   *establishmentResponse `json:"restaurant,omitempty"`
}

func toBookmarkResponses(bookmarks []*entity.Bookmark) []*entryResponse {
	out := make([]*entryResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		entry := &entryResponse{
			ID:           bookmark.ID,
			RestaurantID: bookmark.EstablishmentID,
			CreatedAt:    bookmark.CreatedAt,
		}
		if bookmark.Establishment != nil {
			entry.Restaurant = toEstablishmentResponse(bookmark.Establishment)
		}
		out = append(out, entry)
	}

	return out
}

func toArchiveResponses(archives []*entity.Archive) []*entryResponse {
	out := make([]*entryResponse, 0, len(archives))
	for _, archive := range archives {
		entry := &entryResponse{
			ID:           archive.ID,
			RestaurantID: archive.EstablishmentID,
			CreatedAt:    archive.CreatedAt,
		}
		if archive.Establishment != nil {
			entry.Restaurant = toEstablishmentResponse(archive.Establishment)
		}
		out = append(out, entry)
	}

	return out
}

// establishmentIDFromBody reads the target establishment from the request
// body, rejecting a missing or non-positive id.
func establishmentIDFromBody(c echo.Context) (int64, error) {
	var input addEntryInput
	if err := c.Bind(&input); err != nil {
		return 0, domainerrors.ErrEstablishmentIDRequired
	}
	if input.RestaurantID <= 0 {
		return 0, domainerrors.ErrEstablishmentIDRequired
	}

	return input.RestaurantID, nil
}

// establishmentIDFromPath reads the target establishment from the path.
func establishmentIDFromPath(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrEstablishmentIDRequired
	}

	return id, nil
}

// ListBookmarks handles GET /api/bookmarks.
func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	bookmarks, err := h.uc.Bookmarks(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponses(bookmarks), "")
}

// AddBookmark handles POST /api/bookmarks.
func (h *BookmarkHandler) AddBookmark(c echo.Context) error {
	establishmentID, err := establishmentIDFromBody(c)
	if err != nil {
		return errors.WithStack(err)
	}

	bookmark, err := h.uc.AddBookmark(c.Request().Context(), middleware.UserID(c), establishmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	data := &entryResponse{
		ID:           bookmark.ID,
		RestaurantID: bookmark.EstablishmentID,
		CreatedAt:    bookmark.CreatedAt,
	}

	return response.Success(c, http.StatusCreated, data, "Favori ajouté")
}

// RemoveBookmark handles DELETE /api/bookmarks/:id.
func (h *BookmarkHandler) RemoveBookmark(c echo.Context) error {
	establishmentID, err := establishmentIDFromPath(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveBookmark(c.Request().Context(), middleware.UserID(c), establishmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favori supprimé")
}

// ListArchived handles GET /api/archived.
func (h *BookmarkHandler) ListArchived(c echo.Context) error {
	archives, err := h.uc.Archived(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArchiveResponses(archives), "")
}

// AddArchive handles POST /api/archived.
func (h *BookmarkHandler) AddArchive(c echo.Context) error {
	establishmentID, err := establishmentIDFromBody(c)
	if err != nil {
		return errors.WithStack(err)
	}

	archive, err := h.uc.AddArchive(c.Request().Context(), middleware.UserID(c), establishmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	data := &entryResponse{
		ID:           archive.ID,
		RestaurantID: archive.EstablishmentID,
		CreatedAt:    archive.CreatedAt,
	}

	return response.Success(c, http.StatusCreated, data, "Ajouté à l'archive")
}

// RemoveArchive handles DELETE /api/archived/:id.
func (h *BookmarkHandler) RemoveArchive(c echo.Context) error {
	establishmentID, err := establishmentIDFromPath(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveArchive(c.Request().Context(), middleware.UserID(c), establishmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Retiré de l'archive")
}
