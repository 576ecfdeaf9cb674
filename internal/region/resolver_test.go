package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	ds := testDataset(t)
	idx, err := NewIndex(ds)
	require.NoError(t, err)
	r, err := NewResolver(ds, idx, DefaultDirectionConfig())
	require.NoError(t, err)
	return r
}

func ptr(f float64) *float64 { return &f }

func TestNewResolverRequiresTables(t *testing.T) {
	_, err := NewResolver(nil, nil, DefaultDirectionConfig())
	require.Error(t, err)
}

func TestResolveAlbanyScenario(t *testing.T) {
	r := testResolver(t)

	got := r.Resolve(Input{
		State:  "NY",
		County: "Albany",
		Lat:    ptr(42.6526),
		Lng:    ptr(-73.7562),
	})

	assert.Equal(t, "Albany", got.County)
	assert.Equal(t, "Capital Region", got.CulturalRegion)
	assert.Equal(t, "Eastern NY", got.StateDirection)
	assert.Equal(t, "New York", got.StateName)
	assert.Equal(t, "Upstate NY", got.CountryCulturalRegion)
	assert.Equal(t, "Northeast", got.CensusRegion)
	assert.Equal(t, "United States", got.Country)
	assert.Equal(t, "North America", got.Continent)
	assert.False(t, got.HasGaps)
	assert.Empty(t, got.GapFields)
}

func TestResolveDCScenario(t *testing.T) {
	r := testResolver(t)

	got := r.Resolve(Input{
		State: "DC",
		Lat:   ptr(38.9),
		Lng:   ptr(-77.03),
	})

	assert.True(t, got.HasGaps)
	assert.Contains(t, got.GapFields, FieldCounty)
	assert.Equal(t, Sentinel, got.County)

	// culturalRegion resolves through the state-default chain, not a sentinel.
	assert.Equal(t, "National Capital Region", got.CulturalRegion)
	assert.Contains(t, got.GapFields, FieldCulturalRegion)

	assert.Equal(t, "District of Columbia", got.StateName)
	assert.Equal(t, "South", got.CensusRegion)
}

func TestResolveZeroInput(t *testing.T) {
	r := testResolver(t)

	got := r.Resolve(Input{})

	// Every field is populated even with nothing to go on.
	assert.Equal(t, Sentinel, got.County)
	assert.Equal(t, Sentinel, got.CulturalRegion)
	assert.Equal(t, Sentinel, got.StateDirection)
	assert.Equal(t, Sentinel, got.StateName)
	assert.Equal(t, Sentinel, got.CountryCulturalRegion)
	assert.Equal(t, Sentinel, got.CensusRegion)
	assert.Equal(t, "United States", got.Country)
	assert.Equal(t, "North America", got.Continent)

	assert.True(t, got.HasGaps)
	assert.Equal(t, []string{
		FieldCounty,
		FieldCulturalRegion,
		FieldStateDirection,
		FieldStateName,
		FieldCountryCulturalRegion,
		FieldCensusRegion,
	}, got.GapFields)
}

func TestResolveAddressFieldsTakePrecedence(t *testing.T) {
	r := testResolver(t)

	got := r.Resolve(Input{
		AddressCounty: "Essex",
		County:        "Albany",
		AddressState:  "NY",
		State:         "VT",
	})

	assert.Equal(t, "Essex", got.County)
	assert.Equal(t, "Adirondacks", got.CulturalRegion)
	assert.Equal(t, "New York", got.StateName)
	assert.NotContains(t, got.GapFields, FieldCounty)
	assert.NotContains(t, got.GapFields, FieldCulturalRegion)
}

func TestResolveMappedCountyIsNeverAGap(t *testing.T) {
	r := testResolver(t)

	got := r.Resolve(Input{AddressCounty: "Albany", AddressState: "NY"})

	assert.Equal(t, "Capital Region", got.CulturalRegion)
	assert.NotContains(t, got.GapFields, FieldCounty)
	assert.NotContains(t, got.GapFields, FieldCulturalRegion)
}

func TestResolveOffshoreCoordinate(t *testing.T) {
	r := testResolver(t)

	// Far out in the Atlantic: no containment, nearest centroid answers and
	// the field is flagged as a gap.
	got := r.Resolve(Input{State: "NY", Lat: ptr(39.0), Lng: ptr(-60.0)})

	assert.NotEqual(t, Sentinel, got.CountryCulturalRegion)
	assert.Contains(t, got.GapFields, FieldCountryCulturalRegion)
}

func TestResolveCountryContinentPassThrough(t *testing.T) {
	r := testResolver(t)

	got := r.Resolve(Input{Country: "Canada", Continent: "North America"})
	assert.Equal(t, "Canada", got.Country)
	assert.NotContains(t, got.GapFields, FieldCountry)
	assert.NotContains(t, got.GapFields, FieldContinent)
}

func TestResolveNeverPanicsOnHostileInput(t *testing.T) {
	r := testResolver(t)

	inputs := []Input{
		{State: "??", County: "'; DROP TABLE--"},
		{AddressState: "NY", Lat: ptr(-90), Lng: ptr(180)},
		{State: "NY", Lat: ptr(0), Lng: ptr(0)},
		{Country: Sentinel, Continent: Sentinel},
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			got := r.Resolve(in)
			for _, v := range []string{
				got.County, got.CulturalRegion, got.StateDirection, got.StateName,
				got.CountryCulturalRegion, got.CensusRegion, got.Country, got.Continent,
			} {
				assert.NotEmpty(t, v)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name     string
		state    string
		lat      float64
		lng      float64
		expected string
	}{
		{"albany is eastern ny", "NY", 42.6526, -73.7562, "Eastern NY"},
		{"buffalo is western ny", "NY", 42.8864, -78.8784, "Western NY"},
		{"plattsburgh is northeastern ny", "NY", 44.6995, -73.4529, "Northeastern NY"},
		{"syracuse is central ny", "NY", 43.0481, -76.1474, "Central NY"},
		{"nyc is southeastern ny", "NY", 40.71, -74.0, "Southeastern NY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.direction(tt.state, tt.lat, tt.lng)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := r.direction("??", 42, -73)
	assert.False(t, ok)
}

func TestDirectionSmallStateThreshold(t *testing.T) {
	r := testResolver(t)

	// DC spans a fifth of a degree; the larger small-state threshold keeps
	// near-center points Central instead of flapping to a compass edge.
	got, ok := r.direction("DC", 38.9, -77.02)
	require.True(t, ok)
	assert.Equal(t, "Central DC", got)
}
