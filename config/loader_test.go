package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const validConfig = `
logMode: production
groups:
  - { name: Everyone, column: total_pop }
  - { name: Low income, column: lowincome_pop }
scenarios:
  - name: hospitals-am
    mode: minimum_time
    travelTimes: data/ttm_am.csv
    demographics: data/demo.csv
    missingPenalty: 180
  - name: daycare-seats
    mode: cumulative
    travelTimes: data/ttm_daycare.csv
    demographics: data/demo.csv
    opportunities: data/daycares.geojson
    cutoffMinutes: 30
`

func TestLoadAppConfig(t *testing.T) {
	cfg, err := LoadAppConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if len(cfg.Groups) != 2 || cfg.Groups[0].Column != "total_pop" {
		t.Errorf("unexpected groups: %+v", cfg.Groups)
	}
	if len(cfg.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(cfg.Scenarios))
	}
	if cfg.Scenarios[1].CutoffMinutes != 30 {
		t.Errorf("cutoff = %v, want 30", cfg.Scenarios[1].CutoffMinutes)
	}
	if cfg.LogMode != "production" {
		t.Errorf("logMode = %q", cfg.LogMode)
	}
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no groups", `
scenarios:
  - { name: s, mode: minimum_time, travelTimes: a.csv, demographics: b.csv }
`},
		{"unknown mode", `
groups: [{ name: Everyone, column: total_pop }]
scenarios:
  - { name: s, mode: fastest, travelTimes: a.csv, demographics: b.csv }
`},
		{"cumulative without cutoff", `
groups: [{ name: Everyone, column: total_pop }]
scenarios:
  - { name: s, mode: cumulative, travelTimes: a.csv, demographics: b.csv }
`},
		{"duplicate scenario names", `
groups: [{ name: Everyone, column: total_pop }]
scenarios:
  - { name: s, mode: minimum_time, travelTimes: a.csv, demographics: b.csv }
  - { name: s, mode: minimum_time, travelTimes: c.csv, demographics: d.csv }
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadAppConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("expected config error")
			}
		})
	}
}

func TestSelectScenario(t *testing.T) {
	cfg, err := LoadAppConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}

	s, err := cfg.SelectScenario("")
	if err != nil || s.Name != "hospitals-am" {
		t.Errorf("default scenario = %q, %v; want hospitals-am", s.Name, err)
	}
	s, err = cfg.SelectScenario("daycare-seats")
	if err != nil || s.Name != "daycare-seats" {
		t.Errorf("named scenario = %q, %v", s.Name, err)
	}
	if _, err := cfg.SelectScenario("nope"); err == nil {
		t.Error("expected error for unknown scenario name")
	}
}
