package aggregator

import (
	"github.com/theoremus-urban-solutions/transit-equity/equity"
)

// BuildMinimumTimeSummary computes nearest-destination travel times per
// zone and their population-weighted average per demographic group.
//
// Missing travel times are substituted with Opts.MissingPenalty before
// the per-zone minimum is taken. The per-zone minimums are inner-joined
// onto the demographics table: a zone missing from either side is
// excluded from the weighting and counted as a join-mismatch warning.
func (a *Aggregator) BuildMinimumTimeSummary() (*equity.WeightedSummary, error) {
	if err := a.validateGroups(); err != nil {
		return nil, err
	}
	if a.Opts.MissingPenalty <= a.Matrix.MaxFiniteMinutes() {
		return nil, &PenaltyError{Penalty: a.Opts.MissingPenalty, MaxFinite: a.Matrix.MaxFiniteMinutes()}
	}

	scores := make([]equity.AccessScore, 0, a.Matrix.Len())
	for _, origin := range a.Matrix.Origins() {
		nearest := 0.0
		first := true
		for _, rec := range a.Matrix.RecordsForOrigin(origin) {
			t := rec.Minutes
			if rec.Missing {
				t = a.Opts.MissingPenalty
				a.Warnings.Add(WarningMissingTravelTime, origin)
			}
			if first || t < nearest {
				nearest = t
				first = false
			}
		}
		if !a.Zones.HasZone(origin) {
			a.Warnings.Add(WarningZoneNotInDemographics, origin)
			continue
		}
		scores = append(scores, equity.AccessScore{ZoneID: origin, Score: nearest})
	}
	for _, z := range a.Zones.Zones() {
		if !a.Matrix.HasOrigin(z) {
			a.Warnings.Add(WarningZoneNotInMatrix, z)
		}
	}

	groups, err := a.summarize(scores)
	if err != nil {
		return nil, err
	}
	return &equity.WeightedSummary{Mode: string(ModeMinimumTime), Groups: groups, Scores: scores}, nil
}
