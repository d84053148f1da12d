package census

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Zone id column aliases accepted in demographic tables.
var zoneAliases = []string{"zone_id", "geouid", "dauid", "id"}

// LoadCSV reads a demographics table from a CSV file. The table has one
// zone identifier column and one integer column per demographic group;
// every non-id column is parsed as a count.
func LoadCSV(path string) (*ZoneTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := consumeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func consumeCSV(r io.Reader) (*ZoneTable, error) {
	csvr := csv.NewReader(r)
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) < 2 {
		return nil, fmt.Errorf("demographics table has no data rows")
	}
	head := rec[0]
	zCol := -1
	for i, h := range head {
		for _, a := range zoneAliases {
			if strings.EqualFold(strings.TrimSpace(h), a) {
				zCol = i
			}
		}
	}
	if zCol < 0 {
		return nil, fmt.Errorf("demographics table missing zone id column (have %v, want one of %v)", head, zoneAliases)
	}
	columns := make([]string, 0, len(head)-1)
	for i, h := range head {
		if i != zCol {
			columns = append(columns, strings.TrimSpace(h))
		}
	}
	v := validator.New()
	zones := make([]ZoneDemographics, 0, len(rec)-1)
	for n, row := range rec[1:] {
		z := ZoneDemographics{
			ZoneID: strings.TrimSpace(row[zCol]),
			Counts: make(map[string]int, len(columns)),
		}
		for i, h := range head {
			if i == zCol {
				continue
			}
			raw := strings.TrimSpace(row[i])
			if raw == "" {
				raw = "0"
			}
			c, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: non-integer count %q in column %q", n+2, row[i], h)
			}
			z.Counts[strings.TrimSpace(h)] = c
		}
		if err := v.Struct(z); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		zones = append(zones, z)
	}
	return NewZoneTable(columns, zones)
}
