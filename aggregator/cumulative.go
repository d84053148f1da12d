package aggregator

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-equity/equity"
)

// BuildCumulativeSummary computes, per zone, the opportunity capacity
// reachable strictly under Opts.CutoffMinutes, and its population-
// weighted value per demographic group.
//
// The per-zone capacity sums are right-joined onto the demographics
// table: every demographic zone appears, and a zone with no qualifying
// destination gets capacity 0. Unlike minimum-time mode this is not a
// data gap — a zone with nothing reachable under the cutoff genuinely
// has zero access.
func (a *Aggregator) BuildCumulativeSummary() (*equity.WeightedSummary, error) {
	if err := a.validateGroups(); err != nil {
		return nil, err
	}
	if a.Opts.CutoffMinutes <= 0 {
		return nil, fmt.Errorf("cumulative mode requires a positive cutoff, got %v", a.Opts.CutoffMinutes)
	}

	caps := map[string]float64{}
	for _, origin := range a.Matrix.Origins() {
		for _, rec := range a.Matrix.RecordsForOrigin(origin) {
			if rec.Missing {
				// Unreachable pairs cannot qualify under any cutoff;
				// counted so the exclusion is visible, never silent.
				a.Warnings.Add(WarningMissingTravelTime, origin)
				continue
			}
			if rec.Minutes >= a.Opts.CutoffMinutes {
				continue
			}
			capacity := 1.0
			if a.Opps != nil {
				c, ok := a.Opps.Capacity(rec.DestinationID)
				if !ok {
					a.Warnings.Add(WarningUnknownDestination, rec.DestinationID)
					continue
				}
				capacity = c
			}
			caps[origin] += capacity
		}
		if !a.Zones.HasZone(origin) {
			a.Warnings.Add(WarningZoneNotInDemographics, origin)
		}
	}

	scores := make([]equity.AccessScore, 0, a.Zones.Len())
	for _, z := range a.Zones.Zones() {
		scores = append(scores, equity.AccessScore{ZoneID: z, Score: caps[z]})
	}

	groups, err := a.summarize(scores)
	if err != nil {
		return nil, err
	}
	return &equity.WeightedSummary{Mode: string(ModeCumulative), Groups: groups, Scores: scores}, nil
}
