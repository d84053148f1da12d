// Package config loads the YAML application configuration.
//
// A configuration names the demographic groups to report (each bound to a
// column of the demographics table) and one or more scenarios. A scenario
// points at the three input tables for a run and carries the mode-specific
// parameters: the missing-travel-time penalty for minimum_time mode and the
// cutoff for cumulative mode.
//
// Example config.yml:
//
//	logMode: production
//	groups:
//	  - { name: Everyone, column: total_pop }
//	  - { name: Visible minority, column: vismin_pop }
//	  - { name: Low income, column: lowincome_pop }
//	scenarios:
//	  - name: hospitals-am
//	    mode: minimum_time
//	    travelTimes: data/ttm_hospitals_am.csv
//	    demographics: data/da_demographics.csv
//	    missingPenalty: 180
//	  - name: daycare-seats
//	    mode: cumulative
//	    travelTimes: data/ttm_daycares_am.csv
//	    demographics: data/da_demographics.csv
//	    opportunities: data/daycares.geojson
//	    cutoffMinutes: 30
//
// Validation runs once at load time via go-playground/validator; scenarios
// with an unknown mode, a cumulative scenario without a positive cutoff, or
// duplicate scenario names are rejected before any data is read.
package config
