package scenario_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/transit-equity/config"
	"github.com/theoremus-urban-solutions/transit-equity/scenario"
)

const (
	amMatrix = "from_id,to_id,travel_time\n" +
		"Z1,H1,10\n" +
		"Z2,H1,NA\n"
	pmMatrix = "from_id,to_id,travel_time\n" +
		"Z1,H1,20\n" +
		"Z2,H1,90\n"
	demographics = "zone_id,total_pop,lowincome_pop\n" +
		"Z1,80,10\n" +
		"Z2,20,40\n"
	daycares = `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "properties": {"id": "H1", "capacity": 50},
	     "geometry": {"type": "Point", "coordinates": [-79.38, 43.65]}}
	  ]
	}`
)

// setupRunner writes a full fixture directory (two travel-time extracts,
// demographics, opportunities) and returns a runner over it.
func setupRunner(t *testing.T) *scenario.Runner {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"ttm_am.csv":       amMatrix,
		"ttm_pm.csv":       pmMatrix,
		"demo.csv":         demographics,
		"daycares.geojson": daycares,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cfg := config.AppConfig{
		Groups: []config.GroupConfig{
			{Name: "Everyone", Column: "total_pop"},
			{Name: "Low income", Column: "lowincome_pop"},
		},
		Scenarios: []config.ScenarioConfig{
			{
				Name:             "hospitals-am",
				Mode:             "minimum_time",
				TravelTimesPath:  filepath.Join(dir, "ttm_am.csv"),
				DemographicsPath: filepath.Join(dir, "demo.csv"),
				MissingPenalty:   180,
			},
			{
				Name:             "hospitals-pm",
				Mode:             "minimum_time",
				TravelTimesPath:  filepath.Join(dir, "ttm_pm.csv"),
				DemographicsPath: filepath.Join(dir, "demo.csv"),
				MissingPenalty:   180,
			},
			{
				Name:             "hospitals-am-derived-penalty",
				Mode:             "minimum_time",
				TravelTimesPath:  filepath.Join(dir, "ttm_am.csv"),
				DemographicsPath: filepath.Join(dir, "demo.csv"),
			},
			{
				Name:              "daycare-seats",
				Mode:              "cumulative",
				TravelTimesPath:   filepath.Join(dir, "ttm_am.csv"),
				DemographicsPath:  filepath.Join(dir, "demo.csv"),
				OpportunitiesPath: filepath.Join(dir, "daycares.geojson"),
				CutoffMinutes:     30,
			},
		},
	}
	return scenario.NewRunner(cfg, zap.NewNop().Sugar())
}

func TestRunner_MinimumTimeScenario(t *testing.T) {
	r := setupRunner(t)
	s, err := r.Run("hospitals-am")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Scenario != "hospitals-am" || s.Mode != "minimum_time" {
		t.Errorf("summary labels wrong: %+v", s)
	}
	// 0.8*10 + 0.2*180
	if got := s.Groups[0].Value; math.Abs(got-44) > 1e-9 {
		t.Errorf("Everyone = %v, want 44", got)
	}
	// 0.2*10 + 0.8*180
	if got := s.Groups[1].Value; math.Abs(got-146) > 1e-9 {
		t.Errorf("Low income = %v, want 146", got)
	}
}

func TestRunner_DerivedPenalty(t *testing.T) {
	r := setupRunner(t)
	s, err := r.Run("hospitals-am-derived-penalty")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Max finite time in the AM matrix is 10, so the derived penalty is
	// 10 + 30 = 40 and the unreachable Z2 scores exactly that.
	for _, sc := range s.Scores {
		if sc.ZoneID == "Z2" && math.Abs(sc.Score-40) > 1e-9 {
			t.Errorf("Z2 score = %v, want derived penalty 40", sc.Score)
		}
	}
}

func TestRunner_CumulativeScenario(t *testing.T) {
	r := setupRunner(t)
	s, err := r.Run("daycare-seats")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Z1 reaches H1 (50 seats) in 10 minutes; Z2 reaches nothing but
	// stays in with 0 under the right-join policy.
	if len(s.Scores) != 2 {
		t.Fatalf("expected both zones scored, got %+v", s.Scores)
	}
	// Everyone: 0.8*50 + 0.2*0
	if got := s.Groups[0].Value; math.Abs(got-40) > 1e-9 {
		t.Errorf("Everyone = %v, want 40", got)
	}
}

func TestRunner_CompareScenarios(t *testing.T) {
	r := setupRunner(t)
	c, err := r.CompareScenarios("hospitals-am", "hospitals-pm")
	if err != nil {
		t.Fatalf("CompareScenarios: %v", err)
	}
	if c.ScenarioA != "hospitals-am" || c.ScenarioB != "hospitals-pm" {
		t.Errorf("comparison labels wrong: %+v", c)
	}
	// AM Everyone = 44; PM Everyone = 0.8*20 + 0.2*90 = 34.
	if got := c.Rows[0].Delta; math.Abs(got-(-10)) > 1e-9 {
		t.Errorf("Everyone delta = %v, want -10", got)
	}
}

func TestRunner_CachesResults(t *testing.T) {
	r := setupRunner(t)
	first, err := r.Run("hospitals-am")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := r.Run("hospitals-am")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first != second {
		t.Error("second run should return the cached summary")
	}
}

func TestRunner_UnknownScenario(t *testing.T) {
	r := setupRunner(t)
	if _, err := r.Run("nope"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}
