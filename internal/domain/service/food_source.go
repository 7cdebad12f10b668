package service

import (
	"context"
	"encoding/json"
	"strings"
)

// GeoPoint is the coordinate pair attached to a source record.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CuisineList absorbs the source's cuisine field, which is delivered either
// as a single string or as a list depending on the record.
type CuisineList []string

// UnmarshalJSON accepts "italian" as well as ["italian","pizza"].
func (c *CuisineList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*c = nil
		} else {
			*c = CuisineList{single}
		}

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*c = CuisineList(list)

	return nil
}

// Join flattens the list into the stored comma-and-space-separated form.
func (c CuisineList) Join() string {
	return strings.Join(c, ", ")
}

// SourceRecord is one raw establishment as delivered by the OpenDataSoft
// OSM France food-service dataset. Field names follow the upstream schema:
// the meta_* commune fields are the populated ones, the bare postcode field
// is rarely filled.
type SourceRecord struct {
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	Phone          string      `json:"phone"`
	Website        string      `json:"website"`
	Email          string      `json:"email"`
	Cuisine        CuisineList `json:"cuisine"`
	Street         string      `json:"street"`
	Housenumber    string      `json:"housenumber"`
	Postcode       string      `json:"postcode"`
	MetaCodeCom    string      `json:"meta_code_com"` // Commune postal code, takes priority over Postcode.
	MetaNameCom    string      `json:"meta_name_com"` // Commune name (our city).
	MetaCodeDep    string      `json:"meta_code_dep"`
	MetaNameDep    string      `json:"meta_name_dep"`
	MetaCodeReg    string      `json:"meta_code_reg"`
	MetaNameReg    string      `json:"meta_name_reg"`
	OpeningHours   string      `json:"opening_hours"`
	Wheelchair     string      `json:"wheelchair"`
	Delivery       string      `json:"delivery"`
	Takeaway       string      `json:"takeaway"`
	OutdoorSeating string      `json:"outdoor_seating"`
	MetaGeoPoint   *GeoPoint   `json:"meta_geo_point"`
	MetaOSMID      string      `json:"meta_osm_id"`
	MetaOSMURL     string      `json:"meta_osm_url"`
}

// HasContact reports whether the record carries at least one of phone or
// email. Records without any contact channel are not worth listing.
func (r *SourceRecord) HasContact() bool {
	return r.Phone != "" || r.Email != ""
}

// SourcePage is one page of the offset-based records endpoint.
type SourcePage struct {
	TotalCount int            `json:"total_count"`
	Results    []SourceRecord `json:"results"`
}

// FoodServiceSource abstracts the upstream open data service. The sync
// usecase consumes it in two modes: one big export download, or repeated
// offset-based pages.
type FoodServiceSource interface {
	// FetchExport downloads the complete dataset export in a single call.
	// Implementations must tolerate a multi-minute download.
	FetchExport(ctx context.Context) ([]SourceRecord, error)

	// FetchPage retrieves one fixed-size page from the records endpoint.
	FetchPage(ctx context.Context, limit, offset int) (*SourcePage, error)
}
