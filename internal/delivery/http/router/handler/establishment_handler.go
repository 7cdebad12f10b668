// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/response"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EstablishmentHandler serves the search and the metadata lists.
type EstablishmentHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewEstablishmentHandler is the constructor for EstablishmentHandler, injected by Fx.
func NewEstablishmentHandler(uc usecase.SearchUsecase, logger *slog.Logger) *EstablishmentHandler {
	return &EstablishmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// geoPointResponse mirrors the upstream coordinate shape.
type geoPointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// establishmentResponse is the wire shape of one search result. Field names
// follow the upstream dataset so existing clients keep working.
type establishmentResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type,omitempty"`
	Cuisine        string            `json:"cuisine,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Website        string            `json:"website,omitempty"`
	Email          string            `json:"email,omitempty"`
	Street         string            `json:"street,omitempty"`
	Housenumber    string            `json:"housenumber,omitempty"`
	Postcode       string            `json:"postcode,omitempty"`
	City           string            `json:"city,omitempty"`
	Department     string            `json:"department,omitempty"`
	Region         string            `json:"region,omitempty"`
	OpeningHours   string            `json:"opening_hours,omitempty"`
	Wheelchair     string            `json:"wheelchair,omitempty"`
	Delivery       string            `json:"delivery,omitempty"`
	Takeaway       string            `json:"takeaway,omitempty"`
	OutdoorSeating string            `json:"outdoor_seating,omitempty"`
	OSMID          string            `json:"osm_id,omitempty"`
	MetaGeoPoint   *geoPointResponse `json:"meta_geo_point,omitempty"`
}

// searchResponse is one result page plus the overall match count.
type searchResponse struct {
	TotalCount int64                    `json:"total_count"`
	Results    []*establishmentResponse `json:"results"`
}

func toEstablishmentResponse(est *entity.Establishment) *establishmentResponse {
	resp := &establishmentResponse{
		ID:             est.ID,
		Name:           est.Name,
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
		OSMID:          est.OSMID,
	}
	if est.HasCoordinates() {
		resp.MetaGeoPoint = &geoPointResponse{Lat: *est.Latitude, Lon: *est.Longitude}
	}

	return resp
}

func toEstablishmentResponses(ests []*entity.Establishment) []*establishmentResponse {
	out := make([]*establishmentResponse, 0, len(ests))
	for _, est := range ests {
		out = append(out, toEstablishmentResponse(est))
	}

	return out
}

// parseSearchInput reads the search parameters from the query string.
// Malformed numbers fall back to their defaults instead of failing the
// request.
func parseSearchInput(c echo.Context) usecase.SearchInput {
	input := usecase.SearchInput{
		Term:           c.QueryParam("search"),
		Type:           c.QueryParam("type"),
		Location:       c.QueryParam("location"),
		Region:         c.QueryParam("region"),
		Department:     c.QueryParam("department"),
		Arrondissement: c.QueryParam("arrondissement"),
		SortBy:         c.QueryParam("sortBy"),
	}

	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		input.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		input.Offset = offset
	}
	if lat, err := strconv.ParseFloat(c.QueryParam("userLat"), 64); err == nil {
		input.UserLat = lat
	}
	if lon, err := strconv.ParseFloat(c.QueryParam("userLon"), 64); err == nil {
		input.UserLon = lon
	}

	return input
}

// Search handles GET /api/restaurants.
func (h *EstablishmentHandler) Search(c echo.Context) error {
	input := parseSearchInput(c)

	output, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	data := &searchResponse{
		TotalCount: output.TotalCount,
		Results:    toEstablishmentResponses(output.Results),
	}

	return response.Success(c, http.StatusOK, data, "")
}

// Regions handles GET /api/regions.
func (h *EstablishmentHandler) Regions(c echo.Context) error {
	regions, err := h.uc.Regions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "")
}

// Departments handles GET /api/departments.
func (h *EstablishmentHandler) Departments(c echo.Context) error {
	departments, err := h.uc.Departments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, departments, "")
}

// Cities handles GET /api/cities.
func (h *EstablishmentHandler) Cities(c echo.Context) error {
	cities, err := h.uc.Cities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "")
}

// Arrondissements handles GET /api/arrondissements.
func (h *EstablishmentHandler) Arrondissements(c echo.Context) error {
	arrondissements, err := h.uc.Arrondissements(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, arrondissements, "")
}

// Locations handles GET /api/locations.
func (h *EstablishmentHandler) Locations(c echo.Context) error {
	locations, err := h.uc.Locations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}
