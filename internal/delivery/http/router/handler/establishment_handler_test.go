package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants?"+rawQuery, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestParseSearchInputReadsAllParams(t *testing.T) {
	c := searchContext(t, "search=pizza&type=restaurant&location=Lyon&region=Bretagne"+
		"&department=Finist%C3%A8re&arrondissement=Lyon+2e+Arrondissement"+
		"&limit=50&offset=100&sortBy=distance&userLat=45.76&userLon=4.84")

	input := parseSearchInput(c)

	expected := usecase.SearchInput{
		Term:           "pizza",
		Type:           "restaurant",
		Location:       "Lyon",
		Region:         "Bretagne",
		Department:     "Finistère",
		Arrondissement: "Lyon 2e Arrondissement",
		Limit:          50,
		Offset:         100,
		SortBy:         "distance",
		UserLat:        45.76,
		UserLon:        4.84,
	}
	assert.Equal(t, expected, input)
}

func TestParseSearchInputIgnoresMalformedNumbers(t *testing.T) {
	c := searchContext(t, "limit=abc&offset=-&userLat=north&userLon=")

	input := parseSearchInput(c)

	assert.Zero(t, input.Limit)
	assert.Zero(t, input.Offset)
	assert.Zero(t, input.UserLat)
	assert.Zero(t, input.UserLon)
}

func TestToEstablishmentResponseOmitsPartialCoordinates(t *testing.T) {
	lat := 48.85

	resp := toEstablishmentResponse(&entity.Establishment{Name: "Sans position", Latitude: &lat})
	assert.Nil(t, resp.MetaGeoPoint)

	lon := 2.35
	resp = toEstablishmentResponse(&entity.Establishment{Name: "Avec position", Latitude: &lat, Longitude: &lon})
	require.NotNil(t, resp.MetaGeoPoint)
	assert.InDelta(t, 48.85, resp.MetaGeoPoint.Lat, 0.0001)
	assert.InDelta(t, 2.35, resp.MetaGeoPoint.Lon, 0.0001)
}
