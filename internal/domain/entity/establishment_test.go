package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanarDistanceKmParisLyon(t *testing.T) {
	t.Parallel()

	// Paris centre to Lyon centre. The planar approximation lands a little
	// under the true geodesic distance.
	got := PlanarDistanceKm(48.8566, 2.3522, 45.7640, 4.8357)

	assert.InDelta(t, 392, got, 2)
}

func TestPlanarDistanceKmSamePoint(t *testing.T) {
	t.Parallel()

	assert.Zero(t, PlanarDistanceKm(48.8566, 2.3522, 48.8566, 2.3522))
}

func TestPlanarDistanceKmLongitudeShrinksWithLatitude(t *testing.T) {
	t.Parallel()

	// One degree of longitude is worth less ground distance at higher
	// latitudes; the cosine factor must reflect that.
	atEquator := PlanarDistanceKm(0, 0, 0, 1)
	atParis := PlanarDistanceKm(48.8566, 2, 48.8566, 3)

	assert.Greater(t, atEquator, atParis)
	assert.InDelta(t, 111.045, atEquator, 0.001)
}

func TestHasCoordinates(t *testing.T) {
	t.Parallel()

	lat, lon := 43.2965, 5.3698

	assert.True(t, (&Establishment{Latitude: &lat, Longitude: &lon}).HasCoordinates())
	assert.False(t, (&Establishment{Latitude: &lat}).HasCoordinates())
	assert.False(t, (&Establishment{Longitude: &lon}).HasCoordinates())
	assert.False(t, (&Establishment{}).HasCoordinates())
}
