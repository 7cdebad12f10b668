package entity

// GeoScopeKind discriminates the geographic filter variants. The search API
// grew two parameter conventions over time (a combined location token versus
// separate region and department fields); both are normalized into GeoScope
// values before any query is built.
type GeoScopeKind int

const (
	// GeoScopeCombined matches a single token against city OR department.
	GeoScopeCombined GeoScopeKind = iota
	// GeoScopeRegionDept matches region and/or department by equality.
	GeoScopeRegionDept
	// GeoScopeArrondissement matches the city field against a formatted
	// arrondissement value such as "Paris 1er Arrondissement".
	GeoScopeArrondissement
)

// GeoScope is one geographic filter predicate. Several scopes may apply to a
// single query; they combine conjunctively.
type GeoScope struct {
	Kind       GeoScopeKind
	Token      string // Combined: the city-or-department token.
	Region     string // RegionDept: region name, may be empty.
	Department string // RegionDept: department name, may be empty.
	City       string // Arrondissement: the exact stored city value.
}

// CombinedScope builds a city-or-department scope.
func CombinedScope(token string) GeoScope {
	return GeoScope{Kind: GeoScopeCombined, Token: token}
}

// RegionDeptScope builds a region+department scope. Either field may be empty,
// in which case only the other is matched.
func RegionDeptScope(region, department string) GeoScope {
	return GeoScope{Kind: GeoScopeRegionDept, Region: region, Department: department}
}

// ArrondissementScope builds an exact-city scope for a formatted
// arrondissement value.
func ArrondissementScope(city string) GeoScope {
	return GeoScope{Kind: GeoScopeArrondissement, City: city}
}
