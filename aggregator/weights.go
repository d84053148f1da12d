package aggregator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/theoremus-urban-solutions/transit-equity/equity"
)

// ZoneWeights computes one demographic group's weight per scored zone:
// the zone's share of the group total across the joined zones. The
// weights form a probability distribution (they sum to 1). A group whose
// joined total is zero has no defined weighting and yields a
// ZeroPopulationError instead of a division.
func (a *Aggregator) ZoneWeights(scores []equity.AccessScore, g Group) ([]float64, error) {
	ws := make([]float64, len(scores))
	for i, s := range scores {
		ws[i] = float64(a.Zones.Count(s.ZoneID, g.Column))
	}
	total := floats.Sum(ws)
	if total == 0 {
		return nil, &ZeroPopulationError{Group: g.Name, Column: g.Column}
	}
	floats.Scale(1/total, ws)
	return ws, nil
}

// groupValue computes the weighted summary value for one group:
// sum over zones of weight[group, zone] * score[zone].
func (a *Aggregator) groupValue(scores []equity.AccessScore, g Group) (float64, error) {
	ws, err := a.ZoneWeights(scores, g)
	if err != nil {
		return 0, err
	}
	xs := make([]float64, len(scores))
	for i, s := range scores {
		xs[i] = s.Score
	}
	return floats.Dot(xs, ws), nil
}
