package aggregator

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-equity/census"
	"github.com/theoremus-urban-solutions/transit-equity/equity"
	"github.com/theoremus-urban-solutions/transit-equity/matrix"
	"github.com/theoremus-urban-solutions/transit-equity/opportunity"
)

// Mode selects the accessibility measure.
type Mode string

const (
	// ModeMinimumTime scores each zone with the travel time to its
	// nearest destination, penalty-filling unreachable pairs.
	ModeMinimumTime Mode = "minimum_time"
	// ModeCumulative scores each zone with the opportunity capacity
	// reachable strictly under a cutoff.
	ModeCumulative Mode = "cumulative"
)

// Group binds a reported demographic group to a demographics column.
type Group struct {
	Name   string
	Column string
}

// Options configures one aggregation run.
type Options struct {
	Mode Mode
	// MissingPenalty replaces missing travel times in minimum_time mode.
	// It must exceed the largest finite travel time in the matrix,
	// otherwise an unreachable zone would score as well as or better
	// than a poorly reachable one.
	MissingPenalty float64
	// CutoffMinutes bounds cumulative mode. The comparison is strict:
	// a record at exactly the cutoff does not count.
	CutoffMinutes float64
	// Groups are the demographic groups to report, in output order.
	Groups []Group
}

// Aggregator computes population-weighted accessibility summaries from a
// travel-time matrix, a zone demographics table, and (for cumulative
// mode) an opportunity set. It never mutates its inputs; independent
// aggregators may run concurrently over shared indexes.
type Aggregator struct {
	Matrix   *matrix.MatrixIndex
	Zones    *census.ZoneTable
	Opps     *opportunity.Set
	Opts     Options
	Warnings *WarningAggregator
}

// New creates an aggregator over loaded input tables. Opps may be nil,
// in which case cumulative mode weighs every destination uniformly at 1.
func New(m *matrix.MatrixIndex, z *census.ZoneTable, o *opportunity.Set, opts Options) *Aggregator {
	return &Aggregator{Matrix: m, Zones: z, Opps: o, Opts: opts, Warnings: NewWarningAggregator()}
}

// BuildSummary runs the aggregation for the configured mode.
func (a *Aggregator) BuildSummary() (*equity.WeightedSummary, error) {
	switch a.Opts.Mode {
	case ModeMinimumTime:
		return a.BuildMinimumTimeSummary()
	case ModeCumulative:
		return a.BuildCumulativeSummary()
	default:
		return nil, fmt.Errorf("unknown aggregation mode %q", a.Opts.Mode)
	}
}

// validateGroups checks the requested groups against the demographics
// table before any arithmetic runs.
func (a *Aggregator) validateGroups() error {
	if len(a.Opts.Groups) == 0 {
		return fmt.Errorf("no demographic groups requested")
	}
	seen := map[string]bool{}
	for _, g := range a.Opts.Groups {
		if seen[g.Name] {
			return fmt.Errorf("duplicate demographic group %q", g.Name)
		}
		seen[g.Name] = true
		if !a.Zones.HasColumn(g.Column) {
			return fmt.Errorf("demographics table has no column %q for group %q", g.Column, g.Name)
		}
	}
	return nil
}

// summarize computes the per-group weighted values over joined scores.
func (a *Aggregator) summarize(scores []equity.AccessScore) ([]equity.GroupValue, error) {
	groups := make([]equity.GroupValue, 0, len(a.Opts.Groups))
	for _, g := range a.Opts.Groups {
		v, err := a.groupValue(scores, g)
		if err != nil {
			return nil, err
		}
		groups = append(groups, equity.GroupValue{Group: g.Name, Value: v})
	}
	return groups, nil
}
