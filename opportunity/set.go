package opportunity

import (
	"fmt"
	"sort"
)

// Set stores opportunity locations keyed by id for capacity lookups
// during cumulative aggregation.
type Set struct {
	byID map[string]Location // destination id -> location
}

// NewSet builds a set over parsed locations. Negative capacities are a
// fatal data-quality error.
func NewSet(locs []Location) (*Set, error) {
	s := &Set{byID: make(map[string]Location, len(locs))}
	for _, l := range locs {
		if l.Capacity < 0 {
			return nil, fmt.Errorf("opportunity %q has negative capacity %v", l.ID, l.Capacity)
		}
		if _, ok := s.byID[l.ID]; ok {
			return nil, fmt.Errorf("duplicate opportunity id %q", l.ID)
		}
		s.byID[l.ID] = l
	}
	return s, nil
}

// Capacity returns the capacity weight for a destination id.
func (s *Set) Capacity(id string) (float64, bool) {
	l, ok := s.byID[id]
	return l.Capacity, ok
}

// IDs returns all location ids, sorted.
func (s *Set) IDs() []string {
	keys := make([]string, 0, len(s.byID))
	for k := range s.byID {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of locations.
func (s *Set) Len() int { return len(s.byID) }
