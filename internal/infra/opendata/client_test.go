package opendata

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BrayanOfficiel/juice-finder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseURL, exportURL string) *Client {
	t.Helper()

	cfg := &config.Config{
		OpenData: &config.OpenDataConfig{
			BaseURL:        baseURL,
			ExportURL:      exportURL,
			PageTimeout:    5 * time.Second,
			ExportTimeout:  5 * time.Second,
			MaxExportBytes: 1 << 20,
		},
	}

	client, ok := NewClient(cfg).(*Client)
	require.True(t, ok)

	return client
}

func TestFetchPageParsesResultsAndForwardsParams(t *testing.T) {
	t.Parallel()

	var gotLimit, gotOffset string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		gotOffset = r.URL.Query().Get("offset")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_count": 2,
			"results": [
				{"name": "Le Bistrot", "type": "restaurant", "phone": "+33 1 00 00 00 00", "cuisine": "french", "meta_name_com": "Paris"},
				{"name": "Bar des Amis", "type": "bar", "cuisine": ["beer", "wine"], "meta_geo_point": {"lat": 48.85, "lon": 2.35}}
			]
		}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	page, err := client.FetchPage(t.Context(), 100, 200)
	require.NoError(t, err)

	assert.Equal(t, "100", gotLimit)
	assert.Equal(t, "200", gotOffset)
	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Results, 2)

	assert.Equal(t, "Le Bistrot", page.Results[0].Name)
	assert.Equal(t, "french", page.Results[0].Cuisine.Join())
	assert.Equal(t, "Paris", page.Results[0].MetaNameCom)

	assert.Equal(t, "beer, wine", page.Results[1].Cuisine.Join())
	require.NotNil(t, page.Results[1].MetaGeoPoint)
	assert.InDelta(t, 48.85, page.Results[1].MetaGeoPoint.Lat, 0.001)
}

func TestFetchPageNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	_, err := client.FetchPage(t.Context(), 100, 10000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestFetchExportParsesArray(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "Crêperie Ty Breizh", "meta_osm_id": "node/42"}]`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	records, err := client.FetchExport(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Crêperie Ty Breizh", records[0].Name)
	assert.Equal(t, "node/42", records[0].MetaOSMID)
}

func TestFetchExportRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 2<<20))
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	_, err := client.FetchExport(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte cap")
}
