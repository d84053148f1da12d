package aggregator

import (
	"errors"
	"fmt"
)

// ErrGroupMismatch marks comparisons between summaries whose group sets
// differ.
var ErrGroupMismatch = errors.New("summaries report different group sets")

// PenaltyError reports a missing-travel-time penalty that does not
// exceed the largest finite travel time in the matrix. With such a
// penalty an unreachable zone would be indistinguishable from, or score
// better than, a poorly reachable one.
type PenaltyError struct {
	Penalty   float64
	MaxFinite float64
}

func (e *PenaltyError) Error() string {
	return fmt.Sprintf("missing-travel-time penalty %v must exceed the maximum finite travel time %v", e.Penalty, e.MaxFinite)
}

// ZeroPopulationError reports a demographic group whose total population
// across the joined zones is zero, leaving the zone weighting undefined.
type ZeroPopulationError struct {
	Group  string
	Column string
}

func (e *ZeroPopulationError) Error() string {
	return fmt.Sprintf("group %q (column %q) has zero total population across joined zones; weighting is undefined", e.Group, e.Column)
}
