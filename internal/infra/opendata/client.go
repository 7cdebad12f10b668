// Package opendata implements the OpenDataSoft client for the OSM France
// food-service dataset.
package opendata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/BrayanOfficiel/juice-finder/config"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/service"
	"github.com/BrayanOfficiel/juice-finder/internal/errors"
)

// Client talks to the two upstream endpoints: the offset-paginated records
// API and the full JSON export. It implements service.FoodServiceSource.
type Client struct {
	cfg *config.OpenDataConfig

	// Separate clients because the two endpoints live on very different time
	// scales: a page answers in seconds, the export download can take minutes.
	pageClient   *http.Client
	exportClient *http.Client
}

// NewClient creates the dataset client from configuration.
func NewClient(cfg *config.Config) service.FoodServiceSource {
	od := cfg.OpenData

	return &Client{
		cfg:          od,
		pageClient:   &http.Client{Timeout: od.PageTimeout},
		exportClient: &http.Client{Timeout: od.ExportTimeout},
	}
}

// FetchPage retrieves one page of records at the given offset.
func (c *Client) FetchPage(ctx context.Context, limit, offset int) (*service.SourcePage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	endpoint := c.cfg.BaseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build page request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.pageClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch records page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("records endpoint returned status %d at offset %d", resp.StatusCode, offset)
	}

	var page service.SourcePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.Wrap(err, "decode records page")
	}

	return &page, nil
}

// FetchExport downloads the complete dataset export. The response is one big
// JSON array; its size is capped so a runaway upstream response cannot
// exhaust memory.
func (c *Client) FetchExport(ctx context.Context) ([]service.SourceRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ExportURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build export request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.exportClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch export")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("export endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxExportBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read export body")
	}
	if int64(len(body)) > c.cfg.MaxExportBytes {
		return nil, errors.Errorf("export exceeds the %d byte cap", c.cfg.MaxExportBytes)
	}

	var records []service.SourceRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "decode export")
	}

	return records, nil
}
