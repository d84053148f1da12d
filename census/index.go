package census

import (
	"fmt"
	"sort"
)

// ZoneTable stores zone demographics in memory, keyed by zone id, with
// per-column population totals precomputed.
type ZoneTable struct {
	zones   map[string]ZoneDemographics // zone_id -> counts
	columns []string                    // group columns in header order
	totals  map[string]int              // group column -> sum over zones
}

// NewZoneTable builds a table over parsed zone records. Zone ids must be
// unique within the table.
func NewZoneTable(columns []string, zones []ZoneDemographics) (*ZoneTable, error) {
	t := &ZoneTable{
		zones:   make(map[string]ZoneDemographics, len(zones)),
		columns: columns,
		totals:  make(map[string]int, len(columns)),
	}
	for _, z := range zones {
		if _, ok := t.zones[z.ZoneID]; ok {
			return nil, fmt.Errorf("duplicate zone id %q in demographics table", z.ZoneID)
		}
		t.zones[z.ZoneID] = z
		for col, c := range z.Counts {
			t.totals[col] += c
		}
	}
	return t, nil
}

// HasZone reports whether the table has a record for the zone.
func (t *ZoneTable) HasZone(zoneID string) bool {
	_, ok := t.zones[zoneID]
	return ok
}

// HasColumn reports whether the table carries a demographic group column.
func (t *ZoneTable) HasColumn(column string) bool {
	for _, c := range t.columns {
		if c == column {
			return true
		}
	}
	return false
}

// Count returns the population count of one group in one zone. Unknown
// zones count zero.
func (t *ZoneTable) Count(zoneID, column string) int {
	return t.zones[zoneID].Counts[column]
}

// Total returns the population total of one group across all zones.
func (t *ZoneTable) Total(column string) int { return t.totals[column] }

// Zones returns all zone ids, sorted for deterministic iteration.
func (t *ZoneTable) Zones() []string {
	keys := make([]string, 0, len(t.zones))
	for k := range t.zones {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Columns returns the group columns in header order.
func (t *ZoneTable) Columns() []string { return t.columns }

// Len returns the number of zones.
func (t *ZoneTable) Len() int { return len(t.zones) }
