package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column aliases accepted in travel-time tables. Routing engines disagree
// on header names, so both the r5-style from_id/to_id pair and the longer
// origin_zone_id/destination_id pair are recognized.
var (
	originAliases      = []string{"from_id", "origin_zone_id", "origin_id"}
	destinationAliases = []string{"to_id", "destination_id", "dest_id"}
	travelTimeAliases  = []string{"travel_time", "travel_time_p50", "minutes"}
)

// LoadCSV reads a travel-time table from a CSV file and builds the
// per-origin index.
func LoadCSV(path string) (*MatrixIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	idx, err := consumeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

func consumeCSV(r io.Reader) (*MatrixIndex, error) {
	csvr := csv.NewReader(r)
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("travel-time table is empty")
	}
	head := rec[0]
	idx := func(aliases []string) int {
		for i, h := range head {
			for _, a := range aliases {
				if strings.EqualFold(strings.TrimSpace(h), a) {
					return i
				}
			}
		}
		return -1
	}
	oCol := idx(originAliases)
	dCol := idx(destinationAliases)
	tCol := idx(travelTimeAliases)
	if oCol < 0 || dCol < 0 || tCol < 0 {
		return nil, fmt.Errorf("travel-time table missing required columns (have %v, need origin/destination/travel_time)", head)
	}
	records := make([]TravelTimeRecord, 0, len(rec)-1)
	for n, row := range rec[1:] {
		tr := TravelTimeRecord{
			OriginZoneID:  strings.TrimSpace(row[oCol]),
			DestinationID: strings.TrimSpace(row[dCol]),
		}
		if tr.OriginZoneID == "" || tr.DestinationID == "" {
			return nil, fmt.Errorf("row %d: empty zone or destination id", n+2)
		}
		raw := strings.TrimSpace(row[tCol])
		if isMissingValue(raw) {
			tr.Missing = true
		} else {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: non-numeric travel_time %q", n+2, raw)
			}
			if v < 0 {
				return nil, fmt.Errorf("row %d: negative travel_time %v", n+2, v)
			}
			tr.Minutes = v
		}
		records = append(records, tr)
	}
	return NewMatrixIndex(records), nil
}

// isMissingValue reports whether a travel-time cell encodes "no path
// found". Empty cells and the NA/NaN spellings emitted by common tabular
// tools all count.
func isMissingValue(raw string) bool {
	switch strings.ToLower(raw) {
	case "", "na", "nan", "null", "inf", "+inf":
		return true
	}
	return false
}
