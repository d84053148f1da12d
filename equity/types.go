package equity

// AccessScore is a per-zone accessibility score: nearest-opportunity
// minutes in minimum-time mode, reachable capacity in cumulative mode.
type AccessScore struct {
	ZoneID string  `json:"zone_id"`
	Score  float64 `json:"score"`
}

// GroupValue is one row of a weighted summary.
type GroupValue struct {
	Group string  `json:"group"`
	Value float64 `json:"weighted_value"`
}

// WeightedSummary is the population-weighted result of one aggregation
// run: one value per requested demographic group, plus the per-zone
// scores the weighting ran over.
type WeightedSummary struct {
	Scenario string        `json:"scenario,omitempty"`
	Mode     string        `json:"mode"`
	Groups   []GroupValue  `json:"groups"`
	Scores   []AccessScore `json:"scores,omitempty"`
}

// ComparisonRow is the elementwise difference for one group between two
// summaries computed under different input tables (e.g. AM vs PM).
type ComparisonRow struct {
	Group  string  `json:"group"`
	ValueA float64 `json:"value_a"`
	ValueB float64 `json:"value_b"`
	Delta  float64 `json:"delta"` // value_b - value_a
}

// Comparison is a full two-scenario delta table.
type Comparison struct {
	ScenarioA string          `json:"scenario_a"`
	ScenarioB string          `json:"scenario_b"`
	Rows      []ComparisonRow `json:"rows"`
}
