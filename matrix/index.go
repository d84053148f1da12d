package matrix

import "sort"

// MatrixIndex stores a travel-time matrix in memory, grouped by origin
// zone for fast per-zone reduction.
type MatrixIndex struct {
	byOrigin     map[string][]TravelTimeRecord // origin_zone_id -> destination rows
	maxFinite    float64                       // largest finite travel time seen
	missingCount int                           // rows with no recorded travel time
}

// NewMatrixIndex builds an index over a slice of travel-time records.
func NewMatrixIndex(records []TravelTimeRecord) *MatrixIndex {
	m := &MatrixIndex{byOrigin: map[string][]TravelTimeRecord{}}
	for _, r := range records {
		m.byOrigin[r.OriginZoneID] = append(m.byOrigin[r.OriginZoneID], r)
		if r.Missing {
			m.missingCount++
			continue
		}
		if r.Minutes > m.maxFinite {
			m.maxFinite = r.Minutes
		}
	}
	return m
}

// RecordsForOrigin returns all destination rows for one origin zone.
func (m *MatrixIndex) RecordsForOrigin(zoneID string) []TravelTimeRecord {
	return m.byOrigin[zoneID]
}

// Origins returns the origin zone ids present in the matrix, sorted for
// deterministic iteration.
func (m *MatrixIndex) Origins() []string {
	keys := make([]string, 0, len(m.byOrigin))
	for k := range m.byOrigin {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasOrigin reports whether the matrix carries any row for the zone.
func (m *MatrixIndex) HasOrigin(zoneID string) bool {
	_, ok := m.byOrigin[zoneID]
	return ok
}

// MaxFiniteMinutes returns the largest finite travel time in the matrix.
// The missing-value penalty must exceed this for minimum-time scoring.
func (m *MatrixIndex) MaxFiniteMinutes() float64 { return m.maxFinite }

// MissingCount returns the number of rows with no recorded travel time.
func (m *MatrixIndex) MissingCount() int { return m.missingCount }

// Len returns the number of distinct origin zones.
func (m *MatrixIndex) Len() int { return len(m.byOrigin) }
