package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/response"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultDebugLimit = 50

// SyncHandler exposes the reconciliation and maintenance operations.
type SyncHandler struct {
	uc     usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler, injected by Fx.
func NewSyncHandler(uc usecase.SyncUsecase, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		uc:     uc,
		logger: logger,
	}
}

// Update handles POST /api/restaurants/update: a paginated incremental run.
func (h *SyncHandler) Update(c echo.Context) error {
	stats, err := h.uc.RunPaginated(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Synchronisation paginée terminée")
}

// Import handles POST /api/restaurants/import: a full export run.
func (h *SyncHandler) Import(c echo.Context) error {
	stats, err := h.uc.RunBulk(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Import complet terminé")
}

// Cleanup handles POST /api/restaurants/cleanup.
func (h *SyncHandler) Cleanup(c echo.Context) error {
	deleted, remaining, err := h.uc.Cleanup(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]int64{
		"deleted":   deleted,
		"remaining": remaining,
	}

	return response.Success(c, http.StatusOK, data, "Nettoyage terminé")
}

// Reset handles DELETE /api/restaurants.
func (h *SyncHandler) Reset(c echo.Context) error {
	deleted, err := h.uc.Reset(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Warn("Establishment store reset over HTTP", slog.Int64("deleted", deleted))

	data := map[string]int64{"deleted": deleted}

	return response.Success(c, http.StatusOK, data, "Annuaire vidé")
}

// Debug handles GET /api/restaurants/debug: store size plus the most recent
// rows, for checking what a sync actually wrote.
func (h *SyncHandler) Debug(c echo.Context) error {
	limit := defaultDebugLimit
	if parsed, err := strconv.Atoi(c.QueryParam("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	recent, total, err := h.uc.Recent(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"total":  total,
		"recent": toEstablishmentResponses(recent),
	}

	return response.Success(c, http.StatusOK, data, "")
}
