// Package aggregator is the accessibility/equity aggregation core: it
// turns an origin-destination travel-time matrix and a per-zone
// demographic table into per-zone accessibility scores and
// population-weighted summaries per demographic group.
//
// # Modes
//
// Minimum-time: each zone scores the travel time to its nearest
// destination. Missing travel times are first substituted with a penalty
// that must exceed every finite travel time in the matrix (a PenaltyError
// rejects anything smaller). The per-zone minimums are inner-joined onto
// the demographics table; zones present on only one side are excluded and
// counted as warnings.
//
// Cumulative: each zone scores the total opportunity capacity reachable
// strictly under a cutoff (a record at exactly the cutoff is excluded).
// Capacities come from an opportunity set joined by destination id, or
// default to 1 per destination when no set is given. The per-zone sums
// are right-joined onto the demographics table with a 0 fill: a zone with
// nothing reachable genuinely has zero access, unlike the unknown-score
// case in minimum-time mode. The join asymmetry between the two modes is
// deliberate and part of the output contract.
//
// # Weighting
//
// For each requested group, a zone's weight is its share of the group
// total across the joined zones, so the weights sum to 1 and the summary
// value is the weighted sum of zone scores. A group with zero total
// population over the joined zones yields a ZeroPopulationError rather
// than a NaN.
//
// # Usage
//
//	m, _ := matrix.LoadCSV("ttm_hospitals_am.csv")
//	z, _ := census.LoadCSV("da_demographics.csv")
//	agg := aggregator.New(m, z, nil, aggregator.Options{
//	    Mode:           aggregator.ModeMinimumTime,
//	    MissingPenalty: 180,
//	    Groups: []aggregator.Group{
//	        {Name: "Everyone", Column: "total_pop"},
//	        {Name: "Low income", Column: "lowincome_pop"},
//	    },
//	})
//	summary, err := agg.BuildSummary()
//
// Two summaries built under the same group ordering compare with
// Compare(a, b), producing per-group deltas (valueB - valueA).
//
// Aggregation is a pure, synchronous, single-pass batch computation.
// Every error in the taxonomy (malformed groups, bad penalty, zero
// denominator) is detected before any value is emitted; there are no
// partial results.
package aggregator
