// Package census loads per-zone demographic tables and indexes them by
// zone id.
//
// A table row is one zone (e.g. a census dissemination area) with one
// non-negative integer count per demographic group: total population,
// visible-minority population, low-income population, and so on. Counts
// are validated once at load time so malformed input fails immediately
// instead of propagating through the weighted arithmetic downstream.
package census
