package census

import (
	"strings"
	"testing"
)

func TestConsumeCSV_ParsesCountsAndTotals(t *testing.T) {
	data := "zone_id,total_pop,vismin_pop,lowincome_pop\n" +
		"Z1,120,30,15\n" +
		"Z2,80,10,25\n"
	tbl, err := consumeCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("consumeCSV: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	if got := tbl.Count("Z1", "vismin_pop"); got != 30 {
		t.Errorf("Count(Z1, vismin_pop) = %d, want 30", got)
	}
	if got := tbl.Total("total_pop"); got != 200 {
		t.Errorf("Total(total_pop) = %d, want 200", got)
	}
	if got := tbl.Total("lowincome_pop"); got != 40 {
		t.Errorf("Total(lowincome_pop) = %d, want 40", got)
	}
	if !tbl.HasColumn("vismin_pop") || tbl.HasColumn("senior_pop") {
		t.Error("HasColumn misreports columns")
	}
}

func TestConsumeCSV_ZoneColumnAliases(t *testing.T) {
	for _, header := range []string{"zone_id", "GEOUID", "dauid"} {
		data := header + ",total_pop\nZ1,10\n"
		tbl, err := consumeCSV(strings.NewReader(data))
		if err != nil {
			t.Fatalf("header %q: %v", header, err)
		}
		if !tbl.HasZone("Z1") {
			t.Errorf("header %q: zone Z1 not indexed", header)
		}
	}
}

func TestConsumeCSV_EmptyCountIsZero(t *testing.T) {
	data := "zone_id,total_pop,vismin_pop\nZ1,50,\n"
	tbl, err := consumeCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("consumeCSV: %v", err)
	}
	if got := tbl.Count("Z1", "vismin_pop"); got != 0 {
		t.Errorf("empty cell = %d, want 0", got)
	}
}

func TestConsumeCSV_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no zone column", "area,total_pop\nZ1,10\n"},
		{"non-integer count", "zone_id,total_pop\nZ1,many\n"},
		{"negative count", "zone_id,total_pop\nZ1,-5\n"},
		{"no data rows", "zone_id,total_pop\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := consumeCSV(strings.NewReader(tt.data)); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestNewZoneTable_DuplicateZone(t *testing.T) {
	zones := []ZoneDemographics{
		{ZoneID: "Z1", Counts: map[string]int{"total_pop": 1}},
		{ZoneID: "Z1", Counts: map[string]int{"total_pop": 2}},
	}
	if _, err := NewZoneTable([]string{"total_pop"}, zones); err == nil {
		t.Fatal("expected duplicate zone error")
	}
}
