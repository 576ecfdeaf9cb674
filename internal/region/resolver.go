package region

import (
	"github.com/rotisserie/eris"
)

// Sentinel is the explicit placeholder written to a field when no real data
// is resolvable. Fields are never empty.
const Sentinel = "—"

// Field names as they appear in GapFields, in canonical order.
const (
	FieldCounty                = "county"
	FieldCulturalRegion        = "culturalRegion"
	FieldStateDirection        = "stateDirection"
	FieldStateName             = "stateName"
	FieldCountryCulturalRegion = "countryCulturalRegion"
	FieldCensusRegion          = "censusRegion"
	FieldCountry               = "country"
	FieldContinent             = "continent"
)

// Input carries whatever the caller knows about a record. Every field is
// optional; the resolver degrades to sentinels rather than failing.
type Input struct {
	AddressCounty string
	County        string
	AddressState  string
	State         string
	Country       string
	Continent     string
	Lat           *float64
	Lng           *float64
}

// state returns the best-known state code.
func (in *Input) state() string {
	if in.AddressState != "" {
		return in.AddressState
	}
	return in.State
}

// county returns the best-known county name.
func (in *Input) county() string {
	if in.AddressCounty != "" {
		return in.AddressCounty
	}
	return in.County
}

// hasGPS reports whether the input carries a usable coordinate.
func (in *Input) hasGPS() bool {
	return in.Lat != nil && in.Lng != nil
}

// CompleteRegionFields is the guaranteed eight-field classification. All
// eight values are non-empty strings; a field sits in GapFields exactly when
// its value did not come from its primary source.
type CompleteRegionFields struct {
	County                string   `json:"county"`
	CulturalRegion        string   `json:"culturalRegion"`
	StateDirection        string   `json:"stateDirection"`
	StateName             string   `json:"stateName"`
	CountryCulturalRegion string   `json:"countryCulturalRegion"`
	CensusRegion          string   `json:"censusRegion"`
	Country               string   `json:"country"`
	Continent             string   `json:"continent"`
	HasGaps               bool     `json:"hasGaps"`
	GapFields             []string `json:"gapFields,omitempty"`
}

// DirectionConfig tunes the nine-way direction split. Offsets are fractions
// of the state's bounding-box span; states with a span below
// SmallStateSpanDegrees use the larger SmallStateFraction so they do not
// always resolve to Central.
type DirectionConfig struct {
	MinOffsetFraction     float64
	SmallStateFraction    float64
	SmallStateSpanDegrees float64
	PerState              map[string]float64
}

// DefaultDirectionConfig returns the stock direction thresholds.
func DefaultDirectionConfig() DirectionConfig {
	return DirectionConfig{
		MinOffsetFraction:     0.2,
		SmallStateFraction:    0.3,
		SmallStateSpanDegrees: 2.0,
	}
}

// fieldSource is one rung of a field's fallback chain. gap marks whether
// winning from this rung records the field in GapFields.
type fieldSource struct {
	gap     bool
	resolve func(*Input) (string, bool)
}

// fieldChain is the declarative descriptor for one output field: its name,
// an assignment target, and the ordered sources to try.
type fieldChain struct {
	field   string
	assign  func(*CompleteRegionFields, string)
	sources []fieldSource
}

// Resolver produces CompleteRegionFields from partial inputs. It is built
// once over immutable tables and safe for concurrent use.
type Resolver struct {
	ds     *Dataset
	idx    *Index
	dirCfg DirectionConfig
	chains []fieldChain
}

// NewResolver builds a resolver over a loaded dataset and polygon index.
func NewResolver(ds *Dataset, idx *Index, dirCfg DirectionConfig) (*Resolver, error) {
	if ds == nil || idx == nil {
		return nil, eris.Wrap(ErrConfigMissing, "resolver needs dataset and polygon index")
	}
	if dirCfg.MinOffsetFraction <= 0 {
		dirCfg = DefaultDirectionConfig()
	}
	r := &Resolver{ds: ds, idx: idx, dirCfg: dirCfg}
	r.chains = r.buildChains()
	return r, nil
}

// Resolve evaluates every field chain independently and aggregates gaps.
// It never fails: zero input yields eight sentinels and HasGaps=true.
func (r *Resolver) Resolve(in Input) CompleteRegionFields {
	var out CompleteRegionFields
	for _, ch := range r.chains {
		value, gap := Sentinel, true
		for _, src := range ch.sources {
			if v, ok := src.resolve(&in); ok {
				value, gap = v, src.gap
				break
			}
		}
		ch.assign(&out, value)
		if gap {
			out.GapFields = append(out.GapFields, ch.field)
		}
	}
	out.HasGaps = len(out.GapFields) > 0
	return out
}

func (r *Resolver) buildChains() []fieldChain {
	return []fieldChain{
		{
			field:  FieldCounty,
			assign: func(f *CompleteRegionFields, v string) { f.County = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) { return in.AddressCounty, in.AddressCounty != "" }},
				{resolve: func(in *Input) (string, bool) { return in.County, in.County != "" }},
			},
		},
		{
			field:  FieldCulturalRegion,
			assign: func(f *CompleteRegionFields, v string) { f.CulturalRegion = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) { return r.ds.CountyRegion(in.state(), in.county()) }},
				{gap: true, resolve: func(in *Input) (string, bool) { return r.ds.DefaultRegion(in.state()) }},
				{gap: true, resolve: func(in *Input) (string, bool) { return r.ds.FirstRegion(in.state()) }},
			},
		},
		{
			field:  FieldStateDirection,
			assign: func(f *CompleteRegionFields, v string) { f.StateDirection = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) {
					if !in.hasGPS() {
						return "", false
					}
					return r.direction(in.state(), *in.Lat, *in.Lng)
				}},
				{gap: true, resolve: func(in *Input) (string, bool) {
					if st := in.state(); st != "" {
						return "Central " + st, true
					}
					return "", false
				}},
			},
		},
		{
			field:  FieldStateName,
			assign: func(f *CompleteRegionFields, v string) { f.StateName = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) { return StateName(in.state()) }},
			},
		},
		{
			field:  FieldCountryCulturalRegion,
			assign: func(f *CompleteRegionFields, v string) { f.CountryCulturalRegion = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) {
					if !in.hasGPS() {
						return "", false
					}
					name, contained := r.idx.Locate(*in.Lat, *in.Lng)
					if !contained {
						return "", false
					}
					return name, true
				}},
				{gap: true, resolve: func(in *Input) (string, bool) {
					if !in.hasGPS() {
						return "", false
					}
					// Nearest centroid, no distance cutoff: degraded but total.
					name, _ := r.idx.Locate(*in.Lat, *in.Lng)
					return name, name != ""
				}},
				{gap: true, resolve: func(in *Input) (string, bool) { return r.ds.DefaultRegion(in.state()) }},
			},
		},
		{
			field:  FieldCensusRegion,
			assign: func(f *CompleteRegionFields, v string) { f.CensusRegion = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) { return CensusRegionFor(in.state()) }},
			},
		},
		{
			field:  FieldCountry,
			assign: func(f *CompleteRegionFields, v string) { f.Country = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) { return in.Country, in.Country != "" }},
				{resolve: func(*Input) (string, bool) { return "United States", true }},
			},
		},
		{
			field:  FieldContinent,
			assign: func(f *CompleteRegionFields, v string) { f.Continent = v },
			sources: []fieldSource{
				{resolve: func(in *Input) (string, bool) { return in.Continent, in.Continent != "" }},
				{resolve: func(*Input) (string, bool) { return "North America", true }},
			},
		},
	}
}

// direction classifies a point against its state's bounding centroid along
// both axes, producing one of the nine compass buckets.
func (r *Resolver) direction(state string, lat, lng float64) (string, bool) {
	info, ok := States[state]
	if !ok {
		return "", false
	}

	latSpan := info.MaxLat - info.MinLat
	lngSpan := info.MaxLng - info.MinLng
	if latSpan <= 0 || lngSpan <= 0 {
		return "", false
	}

	threshold := r.dirCfg.MinOffsetFraction
	if latSpan < r.dirCfg.SmallStateSpanDegrees || lngSpan < r.dirCfg.SmallStateSpanDegrees {
		threshold = r.dirCfg.SmallStateFraction
	}
	if per, ok := r.dirCfg.PerState[state]; ok {
		threshold = per
	}

	dLat := (lat - (info.MinLat+info.MaxLat)/2) / latSpan
	dLng := (lng - (info.MinLng+info.MaxLng)/2) / lngSpan

	var ns, ew string
	switch {
	case dLat >= threshold:
		ns = "North"
	case dLat <= -threshold:
		ns = "South"
	}
	switch {
	case dLng >= threshold:
		ew = "east"
	case dLng <= -threshold:
		ew = "west"
	}

	switch {
	case ns != "" && ew != "":
		return ns + ew + "ern " + state, true
	case ns != "":
		return ns + "ern " + state, true
	case ew == "east":
		return "Eastern " + state, true
	case ew == "west":
		return "Western " + state, true
	default:
		return "Central " + state, true
	}
}
