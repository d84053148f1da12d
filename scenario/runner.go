package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/theoremus-urban-solutions/transit-equity/aggregator"
	"github.com/theoremus-urban-solutions/transit-equity/census"
	"github.com/theoremus-urban-solutions/transit-equity/config"
	"github.com/theoremus-urban-solutions/transit-equity/equity"
	"github.com/theoremus-urban-solutions/transit-equity/matrix"
	"github.com/theoremus-urban-solutions/transit-equity/opportunity"
)

// DefaultPenaltySlackMinutes is added to the largest finite travel time
// in a matrix when a minimum_time scenario does not configure an
// explicit missing-travel-time penalty.
const DefaultPenaltySlackMinutes = 30

// Runner executes configured scenarios and caches their summaries so a
// two-scenario comparison loads and aggregates each side once. Runs are
// independent pure computations; the runner is safe for concurrent use.
type Runner struct {
	cfg config.AppConfig
	log *zap.SugaredLogger

	mu      sync.Mutex
	results map[string]*equity.WeightedSummary // scenario name -> cached summary
}

// NewRunner creates a runner over a loaded configuration.
func NewRunner(cfg config.AppConfig, log *zap.SugaredLogger) *Runner {
	return &Runner{
		cfg:     cfg,
		log:     log,
		results: map[string]*equity.WeightedSummary{},
	}
}

// Run executes one scenario by name (empty selects the first configured
// scenario) and returns its weighted summary, reusing a cached result
// when the scenario already ran.
func (r *Runner) Run(name string) (*equity.WeightedSummary, error) {
	sc, err := r.cfg.SelectScenario(name)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if s, ok := r.results[sc.Name]; ok {
		r.mu.Unlock()
		return s, nil
	}
	r.mu.Unlock()

	log := r.log.With("run_id", uuid.NewString(), "scenario", sc.Name)
	summary, err := r.execute(sc, log)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	r.mu.Lock()
	r.results[sc.Name] = summary
	r.mu.Unlock()
	return summary, nil
}

func (r *Runner) execute(sc config.ScenarioConfig, log *zap.SugaredLogger) (*equity.WeightedSummary, error) {
	m, err := matrix.LoadCSV(sc.TravelTimesPath)
	if err != nil {
		return nil, err
	}
	z, err := census.LoadCSV(sc.DemographicsPath)
	if err != nil {
		return nil, err
	}
	var opps *opportunity.Set
	if sc.OpportunitiesPath != "" {
		opps, err = opportunity.LoadGeoJSON(sc.OpportunitiesPath)
		if err != nil {
			return nil, err
		}
	}
	log.Infow("inputs loaded",
		"origins", m.Len(),
		"missing_travel_times", m.MissingCount(),
		"zones", z.Len(),
		"opportunities", oppCount(opps),
	)

	opts := aggregator.Options{
		Mode:           aggregator.Mode(sc.Mode),
		MissingPenalty: sc.MissingPenalty,
		CutoffMinutes:  sc.CutoffMinutes,
		Groups:         r.groups(),
	}
	if opts.Mode == aggregator.ModeMinimumTime && opts.MissingPenalty == 0 {
		opts.MissingPenalty = m.MaxFiniteMinutes() + DefaultPenaltySlackMinutes
		log.Infow("derived missing-travel-time penalty from data",
			"penalty", opts.MissingPenalty,
			"max_finite_minutes", m.MaxFiniteMinutes(),
		)
	}

	agg := aggregator.New(m, z, opps, opts)
	summary, err := agg.BuildSummary()
	if err != nil {
		return nil, err
	}
	summary.Scenario = sc.Name
	agg.Warnings.LogAll(log, sc.Name)
	logScoreDistribution(log, summary)
	return summary, nil
}

// CompareScenarios runs both scenarios (reusing cached summaries) and
// builds the per-group delta table, valueB - valueA.
func (r *Runner) CompareScenarios(nameA, nameB string) (*equity.Comparison, error) {
	a, err := r.Run(nameA)
	if err != nil {
		return nil, err
	}
	b, err := r.Run(nameB)
	if err != nil {
		return nil, err
	}
	return aggregator.Compare(a, b)
}

// groups translates the configured group bindings into aggregator groups,
// preserving report order.
func (r *Runner) groups() []aggregator.Group {
	gs := make([]aggregator.Group, 0, len(r.cfg.Groups))
	for _, g := range r.cfg.Groups {
		gs = append(gs, aggregator.Group{Name: g.Name, Column: g.Column})
	}
	return gs
}

// logScoreDistribution logs mean and median of the per-zone scores, the
// same orientation numbers the analysis notebooks print before charting.
func logScoreDistribution(log *zap.SugaredLogger, s *equity.WeightedSummary) {
	if len(s.Scores) == 0 {
		return
	}
	xs := make([]float64, len(s.Scores))
	for i, sc := range s.Scores {
		xs[i] = sc.Score
	}
	sort.Float64s(xs)
	log.Infow("scenario complete",
		"zones_scored", len(xs),
		"score_mean", stat.Mean(xs, nil),
		"score_median", stat.Quantile(0.5, stat.Empirical, xs, nil),
	)
}

func oppCount(s *opportunity.Set) int {
	if s == nil {
		return 0
	}
	return s.Len()
}
