// Package opportunity loads geo-referenced opportunity locations
// (hospitals, daycares) from GeoJSON feature collections.
package opportunity
