// Package equity declares the derived output types of the accessibility
// aggregation: per-zone scores, per-group weighted summaries, and
// two-scenario comparison tables. Outputs are produced fresh by each run
// and handed to the formatter; nothing here is persisted.
package equity
