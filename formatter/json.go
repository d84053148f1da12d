package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/transit-equity/equity"
)

type summaryBuilder struct{}

func newSummaryBuilder() *summaryBuilder { return &summaryBuilder{} }

// NewSummaryBuilder creates a builder for rendering summary and
// comparison tables.
func NewSummaryBuilder() *summaryBuilder {
	return newSummaryBuilder()
}

// BuildJSON serializes a weighted summary to JSON
func (sb *summaryBuilder) BuildJSON(s *equity.WeightedSummary) []byte {
	b, _ := json.Marshal(s)
	return b
}

// BuildComparisonJSON serializes a two-scenario comparison to JSON
func (sb *summaryBuilder) BuildComparisonJSON(c *equity.Comparison) []byte {
	b, _ := json.Marshal(c)
	return b
}
