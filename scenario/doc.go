// Package scenario runs configured aggregation scenarios end to end:
// load the scenario's tables, build the aggregator, cache the summary,
// and compare scenario pairs (e.g. AM vs PM extracts of the same
// opportunity set).
package scenario
