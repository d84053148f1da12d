package aggregator

import (
	"strings"

	"go.uber.org/zap"
)

// Warning type constants
const (
	WarningMissingTravelTime     = "missing_travel_time"
	WarningZoneNotInDemographics = "zone_not_in_demographics"
	WarningZoneNotInMatrix       = "zone_not_in_matrix"
	WarningUnknownDestination    = "unknown_destination"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects data-quality warnings during a run and
// outputs consolidated summaries instead of one log line per row.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the number of occurrences recorded for a warning type.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(log *zap.SugaredLogger, scenario string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		description, action := describeWarning(warningType)
		log.Warnw("data quality: "+description,
			"scenario", scenario,
			"action", action,
			"occurrences", info.count,
			"examples", strings.Join(info.examples, ", "),
		)
	}
}

// describeWarning maps a warning type to a human-readable description
// and the policy applied.
func describeWarning(warningType string) (description, action string) {
	switch warningType {
	case WarningMissingTravelTime:
		description = "origin-destination pairs with no recorded travel time"
		action = "Applied the configured unreachable policy (penalty fill or cutoff exclusion)"
	case WarningZoneNotInDemographics:
		description = "matrix origin zones with no demographics record"
		action = "Excluded from the weighted summary (no weight can be assigned)"
	case WarningZoneNotInMatrix:
		description = "demographic zones with no travel-time rows"
		action = "Excluded from the minimum-time join per inner-join policy"
	case WarningUnknownDestination:
		description = "travel-time destinations with no opportunity record"
		action = "Dropped from capacity sums"
	default:
		description = "unknown issue"
		action = "Continued with fallback behavior"
	}
	return description, action
}
