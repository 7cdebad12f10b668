package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortBy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SortName, ParseSortBy("name"))
	assert.Equal(t, SortDistance, ParseSortBy("distance"))
	assert.Equal(t, SortNone, ParseSortBy("none"))
	assert.Equal(t, SortNone, ParseSortBy(""))
	assert.Equal(t, SortNone, ParseSortBy("rating"))
}

func TestUseDistancePlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query SearchQuery
		want  bool
	}{
		{"distance sort with position", SearchQuery{Sort: SortDistance, UserLat: 48.85, UserLon: 2.35}, true},
		{"distance sort without position", SearchQuery{Sort: SortDistance}, false},
		{"distance sort with zero latitude", SearchQuery{Sort: SortDistance, UserLon: 2.35}, false},
		{"distance sort with zero longitude", SearchQuery{Sort: SortDistance, UserLat: 48.85}, false},
		{"name sort with position", SearchQuery{Sort: SortName, UserLat: 48.85, UserLon: 2.35}, false},
		{"no sort", SearchQuery{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.query.UseDistancePlan())
		})
	}
}
