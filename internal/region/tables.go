package region

// StateInfo carries the built-in national facts for one state: full name,
// census region, land neighbors, and an approximate bounding box used for
// direction-of-state calculations.
type StateInfo struct {
	Name         string
	CensusRegion string
	Neighbors    []string
	MinLat       float64
	MaxLat       float64
	MinLng       float64
	MaxLng       float64
}

// Census region labels.
const (
	CensusNortheast = "Northeast"
	CensusMidwest   = "Midwest"
	CensusSouth     = "South"
	CensusWest      = "West"
)

// States is the built-in table for the 50 states plus DC. Bounding boxes are
// approximate; they only drive the coarse nine-way direction split.
var States = map[string]StateInfo{
	"AL": {"Alabama", CensusSouth, []string{"FL", "GA", "MS", "TN"}, 30.2, 35.0, -88.5, -84.9},
	"AK": {"Alaska", CensusWest, nil, 51.2, 71.4, -179.1, -129.9},
	"AZ": {"Arizona", CensusWest, []string{"CA", "CO", "NM", "NV", "UT"}, 31.3, 37.0, -114.8, -109.0},
	"AR": {"Arkansas", CensusSouth, []string{"LA", "MO", "MS", "OK", "TN", "TX"}, 33.0, 36.5, -94.6, -89.6},
	"CA": {"California", CensusWest, []string{"AZ", "NV", "OR"}, 32.5, 42.0, -124.4, -114.1},
	"CO": {"Colorado", CensusWest, []string{"AZ", "KS", "NE", "NM", "OK", "UT", "WY"}, 37.0, 41.0, -109.1, -102.0},
	"CT": {"Connecticut", CensusNortheast, []string{"MA", "NY", "RI"}, 40.98, 42.05, -73.73, -71.79},
	"DE": {"Delaware", CensusSouth, []string{"MD", "NJ", "PA"}, 38.45, 39.84, -75.79, -75.05},
	"DC": {"District of Columbia", CensusSouth, []string{"MD", "VA"}, 38.79, 38.996, -77.12, -76.91},
	"FL": {"Florida", CensusSouth, []string{"AL", "GA"}, 24.5, 31.0, -87.6, -80.0},
	"GA": {"Georgia", CensusSouth, []string{"AL", "FL", "NC", "SC", "TN"}, 30.4, 35.0, -85.6, -80.8},
	"HI": {"Hawaii", CensusWest, nil, 18.9, 22.2, -160.2, -154.8},
	"ID": {"Idaho", CensusWest, []string{"MT", "NV", "OR", "UT", "WA", "WY"}, 42.0, 49.0, -117.2, -111.0},
	"IL": {"Illinois", CensusMidwest, []string{"IA", "IN", "KY", "MO", "WI"}, 36.97, 42.51, -91.5, -87.5},
	"IN": {"Indiana", CensusMidwest, []string{"IL", "KY", "MI", "OH"}, 37.8, 41.8, -88.1, -84.8},
	"IA": {"Iowa", CensusMidwest, []string{"IL", "MN", "MO", "NE", "SD", "WI"}, 40.4, 43.5, -96.6, -90.1},
	"KS": {"Kansas", CensusMidwest, []string{"CO", "MO", "NE", "OK"}, 37.0, 40.0, -102.1, -94.6},
	"KY": {"Kentucky", CensusSouth, []string{"IL", "IN", "MO", "OH", "TN", "VA", "WV"}, 36.5, 39.1, -89.6, -81.96},
	"LA": {"Louisiana", CensusSouth, []string{"AR", "MS", "TX"}, 28.9, 33.0, -94.0, -88.8},
	"ME": {"Maine", CensusNortheast, []string{"NH"}, 43.1, 47.5, -71.1, -66.9},
	"MD": {"Maryland", CensusSouth, []string{"DC", "DE", "PA", "VA", "WV"}, 37.9, 39.7, -79.5, -75.0},
	"MA": {"Massachusetts", CensusNortheast, []string{"CT", "NH", "NY", "RI", "VT"}, 41.2, 42.9, -73.5, -69.9},
	"MI": {"Michigan", CensusMidwest, []string{"IN", "OH", "WI"}, 41.7, 48.3, -90.4, -82.4},
	"MN": {"Minnesota", CensusMidwest, []string{"IA", "ND", "SD", "WI"}, 43.5, 49.4, -97.2, -89.5},
	"MS": {"Mississippi", CensusSouth, []string{"AL", "AR", "LA", "TN"}, 30.2, 35.0, -91.7, -88.1},
	"MO": {"Missouri", CensusMidwest, []string{"AR", "IA", "IL", "KS", "KY", "NE", "OK", "TN"}, 36.0, 40.6, -95.8, -89.1},
	"MT": {"Montana", CensusWest, []string{"ID", "ND", "SD", "WY"}, 44.4, 49.0, -116.1, -104.0},
	"NE": {"Nebraska", CensusMidwest, []string{"CO", "IA", "KS", "MO", "SD", "WY"}, 40.0, 43.0, -104.1, -95.3},
	"NV": {"Nevada", CensusWest, []string{"AZ", "CA", "ID", "OR", "UT"}, 35.0, 42.0, -120.0, -114.0},
	"NH": {"New Hampshire", CensusNortheast, []string{"MA", "ME", "VT"}, 42.7, 45.3, -72.6, -70.6},
	"NJ": {"New Jersey", CensusNortheast, []string{"DE", "NY", "PA"}, 38.9, 41.4, -75.6, -73.9},
	"NM": {"New Mexico", CensusWest, []string{"AZ", "CO", "OK", "TX", "UT"}, 31.3, 37.0, -109.1, -103.0},
	"NY": {"New York", CensusNortheast, []string{"CT", "MA", "NJ", "PA", "VT"}, 40.5, 45.0, -79.76, -71.85},
	"NC": {"North Carolina", CensusSouth, []string{"GA", "SC", "TN", "VA"}, 33.8, 36.6, -84.3, -75.5},
	"ND": {"North Dakota", CensusMidwest, []string{"MN", "MT", "SD"}, 45.9, 49.0, -104.0, -96.6},
	"OH": {"Ohio", CensusMidwest, []string{"IN", "KY", "MI", "PA", "WV"}, 38.4, 41.98, -84.8, -80.5},
	"OK": {"Oklahoma", CensusSouth, []string{"AR", "CO", "KS", "MO", "NM", "TX"}, 33.6, 37.0, -103.0, -94.4},
	"OR": {"Oregon", CensusWest, []string{"CA", "ID", "NV", "WA"}, 42.0, 46.3, -124.6, -116.5},
	"PA": {"Pennsylvania", CensusNortheast, []string{"DE", "MD", "NJ", "NY", "OH", "WV"}, 39.7, 42.3, -80.5, -74.7},
	"RI": {"Rhode Island", CensusNortheast, []string{"CT", "MA"}, 41.1, 42.0, -71.9, -71.1},
	"SC": {"South Carolina", CensusSouth, []string{"GA", "NC"}, 32.0, 35.2, -83.4, -78.5},
	"SD": {"South Dakota", CensusMidwest, []string{"IA", "MN", "MT", "ND", "NE", "WY"}, 42.5, 45.9, -104.1, -96.4},
	"TN": {"Tennessee", CensusSouth, []string{"AL", "AR", "GA", "KY", "MO", "MS", "NC", "VA"}, 35.0, 36.7, -90.3, -81.6},
	"TX": {"Texas", CensusSouth, []string{"AR", "LA", "NM", "OK"}, 25.8, 36.5, -106.6, -93.5},
	"UT": {"Utah", CensusWest, []string{"AZ", "CO", "ID", "NM", "NV", "WY"}, 37.0, 42.0, -114.1, -109.0},
	"VT": {"Vermont", CensusNortheast, []string{"MA", "NH", "NY"}, 42.7, 45.0, -73.4, -71.5},
	"VA": {"Virginia", CensusSouth, []string{"DC", "KY", "MD", "NC", "TN", "WV"}, 36.5, 39.5, -83.7, -75.2},
	"WA": {"Washington", CensusWest, []string{"ID", "OR"}, 45.5, 49.0, -124.8, -116.9},
	"WV": {"West Virginia", CensusSouth, []string{"KY", "MD", "OH", "PA", "VA"}, 37.2, 40.6, -82.6, -77.7},
	"WI": {"Wisconsin", CensusMidwest, []string{"IA", "IL", "MI", "MN"}, 42.5, 47.1, -92.9, -86.8},
	"WY": {"Wyoming", CensusWest, []string{"CO", "ID", "MT", "NE", "SD", "UT"}, 41.0, 45.0, -111.1, -104.1},
}

// StateName expands a two-letter state code to its full name.
func StateName(code string) (string, bool) {
	s, ok := States[code]
	if !ok {
		return "", false
	}
	return s.Name, true
}

// CensusRegionFor returns the official census region for a state code.
func CensusRegionFor(code string) (string, bool) {
	s, ok := States[code]
	if !ok {
		return "", false
	}
	return s.CensusRegion, true
}

// Neighbors returns the land-bordering states for a state code.
func Neighbors(code string) []string {
	return States[code].Neighbors
}

// StateCentroid returns the midpoint of the state's bounding box.
func StateCentroid(code string) (lat, lng float64, ok bool) {
	s, found := States[code]
	if !found {
		return 0, 0, false
	}
	return (s.MinLat + s.MaxLat) / 2, (s.MinLng + s.MaxLng) / 2, true
}
