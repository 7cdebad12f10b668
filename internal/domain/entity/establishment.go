// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"
)

// Establishment types as delivered by the OSM France food-service dataset.
const (
	TypeRestaurant = "restaurant"
	TypeBar        = "bar"
	TypeCafe       = "cafe"
	TypeFastFood   = "fast_food"
	TypePub        = "pub"
)

// Establishment is the central entity: one food or drink venue sourced from
// the open data feed and served by the directory.
type Establishment struct {
	ID             int64      // Internal database identifier.
	SourceID       string     // Stable external key the upsert is keyed on (OSM id or synthesized).
	Name           string     // Display name. Empty names are never surfaced by search.
	Type           string     // Category: restaurant, bar, cafe, fast_food, pub, ...
	Cuisine        string     // Free text, source lists joined with ", ".
	Phone          string
	Website        string
	Email          string
	Street         string
	Housenumber    string
	Postcode       string     // Commune postal code when the source provides one.
	City           string     // Commune name; arrondissements arrive as "<City> <N>e Arrondissement".
	Department     string
	Region         string
	OpeningHours   string     // Raw semicolon-delimited OSM opening_hours string.
	Wheelchair     string     // Tri-state yes/no/unknown.
	Delivery       string
	Takeaway       string
	OutdoorSeating string
	Latitude       *float64   // Present as a pair with Longitude or absent as a pair.
	Longitude      *float64
	OSMID          string     // Native OSM identifier when the source carried one.
	CreatedAt      time.Time
	LastUpdate     *time.Time // Nil until the record is overwritten by a later sync run.
}

// HasCoordinates reports whether both latitude and longitude are present.
// Records with only one of the two are excluded from any distance computation.
func (e *Establishment) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// PlanarDistanceKm computes the simplified flat-earth distance used for the
// distance sort, in kilometres:
//
//	111.045 * sqrt((lat-userLat)^2 + (cos(radians(userLat))*(lon-userLon))^2)
//
// This is deliberately not a true great-circle distance. The stored data and
// the SQL ordering expression both use this approximation, so it must not be
// upgraded to a geodesic formula.
func PlanarDistanceKm(userLat, userLon, lat, lon float64) float64 {
	dLat := lat - userLat
	dLon := math.Cos(userLat*math.Pi/180) * (lon - userLon)

	return 111.045 * math.Sqrt(dLat*dLat+dLon*dLon)
}
