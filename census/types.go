package census

// ZoneDemographics carries the population counts for one zone, one count
// per demographic group column. Counts are non-negative by validation;
// group <= total is expected of the source data but not enforced here.
type ZoneDemographics struct {
	ZoneID string         `validate:"required"`
	Counts map[string]int `validate:"dive,gte=0"` // group column -> count
}
