package aggregator

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-equity/equity"
)

// Compare builds the elementwise delta table between two summaries
// computed under the same group ordering: delta = valueB - valueA per
// group. Summaries with differing group sets cannot be compared.
func Compare(a, b *equity.WeightedSummary) (*equity.Comparison, error) {
	if len(a.Groups) != len(b.Groups) {
		return nil, fmt.Errorf("%w: %d groups vs %d", ErrGroupMismatch, len(a.Groups), len(b.Groups))
	}
	rows := make([]equity.ComparisonRow, 0, len(a.Groups))
	for i, ga := range a.Groups {
		gb := b.Groups[i]
		if ga.Group != gb.Group {
			return nil, fmt.Errorf("%w: position %d has %q vs %q", ErrGroupMismatch, i, ga.Group, gb.Group)
		}
		rows = append(rows, equity.ComparisonRow{
			Group:  ga.Group,
			ValueA: ga.Value,
			ValueB: gb.Value,
			Delta:  gb.Value - ga.Value,
		})
	}
	return &equity.Comparison{ScenarioA: a.Scenario, ScenarioB: b.Scenario, Rows: rows}, nil
}
