// Package formatter renders weighted summaries and comparison tables to
// JSON and CSV for the presentation layer. No other output formats
// exist; there is no binary or wire encoding of results.
package formatter
