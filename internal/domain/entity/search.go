package entity

// SortBy enumerates the supported orderings of a search.
type SortBy string

const (
	// SortNone is the default. No distinct unordered mode exists; it behaves
	// exactly like SortName.
	SortNone SortBy = "none"
	// SortName orders ascending by establishment name.
	SortName SortBy = "name"
	// SortDistance orders ascending by planar distance from the user position.
	SortDistance SortBy = "distance"
)

// ParseSortBy maps a raw query value onto a SortBy, falling back to SortNone
// for anything unrecognized.
func ParseSortBy(raw string) SortBy {
	switch SortBy(raw) {
	case SortName, SortDistance:
		return SortBy(raw)
	default:
		return SortNone
	}
}

// SearchQuery is the transient parameter set of one search request. It is
// constructed per request and never persisted.
type SearchQuery struct {
	Term    string     // Case-insensitive substring match on name; empty means "any named record".
	Type    string     // Exact category match when non-empty.
	Scopes  []GeoScope // Conjunctive geographic predicates.
	Limit   int
	Offset  int
	Sort    SortBy
	UserLat float64 // 0 means no geolocation supplied.
	UserLon float64
}

// UseDistancePlan reports whether the computed-distance query strategy
// applies: distance sort requested and a non-zero user coordinate pair given.
// Otherwise the structured name-ordered plan is used.
func (q *SearchQuery) UseDistancePlan() bool {
	return q.Sort == SortDistance && q.UserLat != 0 && q.UserLon != 0
}
