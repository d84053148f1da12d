package opportunity

import "github.com/paulmach/orb"

// Location is a destination of interest: a hospital, daycare, or similar.
// Capacity is a non-negative weight (e.g. seats); binary-presence
// opportunities load with capacity 1. The point is carried only for
// presentation, never for routing.
type Location struct {
	ID       string
	Capacity float64
	Point    orb.Point
}
