package formatter

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/theoremus-urban-solutions/transit-equity/equity"
)

// BuildCSV renders a weighted summary as a (group, weighted_value) table.
func (sb *summaryBuilder) BuildCSV(s *equity.WeightedSummary) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"group", "weighted_value"})
	for _, g := range s.Groups {
		_ = w.Write([]string{g.Group, formatFloat(g.Value)})
	}
	w.Flush()
	return buf.Bytes()
}

// BuildComparisonCSV renders a comparison as a
// (group, value_a, value_b, delta) table.
func (sb *summaryBuilder) BuildComparisonCSV(c *equity.Comparison) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"group", "value_a", "value_b", "delta"})
	for _, r := range c.Rows {
		_ = w.Write([]string{r.Group, formatFloat(r.ValueA), formatFloat(r.ValueB), formatFloat(r.Delta)})
	}
	w.Flush()
	return buf.Bytes()
}

// BuildScoresCSV renders the per-zone scores as a (zone_id, score) table.
func (sb *summaryBuilder) BuildScoresCSV(s *equity.WeightedSummary) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"zone_id", "score"})
	for _, sc := range s.Scores {
		_ = w.Write([]string{sc.ZoneID, formatFloat(sc.Score)})
	}
	w.Flush()
	return buf.Bytes()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
