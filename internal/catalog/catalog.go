// Package catalog reads snapshots of the known-locations catalog. The engine
// only ever sees immutable snapshots; writes stay with the owning
// application.
package catalog

// Entry is one known location in the catalog. GPS is optional: legacy
// records imported from notes often carry a name and state only.
type Entry struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Lat   *float64 `json:"latitude,omitempty"`
	Lng   *float64 `json:"longitude,omitempty"`
	State string   `json:"state,omitempty"`
}

// HasGPS reports whether the entry carries a coordinate.
func (e *Entry) HasGPS() bool {
	return e.Lat != nil && e.Lng != nil
}

// ReferencePoint is one incoming point-of-interest record to be classified
// against the catalog. Consumed once during a batch; never retained.
type ReferencePoint struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"latitude"`
	Lng    float64 `json:"longitude"`
	Source string  `json:"source,omitempty"`
	State  string  `json:"state,omitempty"`
	County string  `json:"county,omitempty"`
}
