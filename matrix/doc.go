// Package matrix loads origin-destination travel-time tables produced by
// an external transit-routing engine and indexes them by origin zone.
//
// A table row pairs an origin zone centroid with one reachable destination
// and a travel time in minutes. A row may carry no travel time at all,
// meaning the engine found no path within its time budget; such rows are
// loaded as explicit missing records rather than dropped, because the
// downstream aggregation handles unreachability by policy (penalty fill or
// exclusion) and silent drops would change which zones get scored.
//
// Multiple rows share an origin (one per destination). Separate
// time-of-day extracts (AM/PM) are separate tables and separate indexes.
package matrix
