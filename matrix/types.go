package matrix

// TravelTimeRecord is one origin-destination row from the routing engine
// output. Missing marks a pair for which the engine found no path within
// its time budget; Minutes carries no meaning in that case.
type TravelTimeRecord struct {
	OriginZoneID  string
	DestinationID string
	Minutes       float64
	Missing       bool
}
