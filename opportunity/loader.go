package opportunity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON reads an opportunity point collection from a GeoJSON
// FeatureCollection file. Each feature needs an identifier (an "id"
// property or the feature-level id); a numeric "capacity" property is
// optional and defaults to 1.
func LoadGeoJSON(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	locs := make([]Location, 0, len(fc.Features))
	for n, f := range fc.Features {
		id := f.Properties.MustString("id", "")
		if id == "" {
			id = toStringFallback(f.ID, "")
		}
		if id == "" {
			return nil, fmt.Errorf("%s: feature %d has no id", path, n)
		}
		capacity := 1.0
		if raw, ok := f.Properties["capacity"]; ok {
			capacity, err = toFloat(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: feature %q: non-numeric capacity", path, id)
			}
		}
		loc := Location{ID: id, Capacity: capacity}
		if pt, ok := f.Geometry.(orb.Point); ok {
			loc.Point = pt
		}
		locs = append(locs, loc)
	}
	return NewSet(locs)
}

// Utility converters for flexible JSON values
func toStringFallback(v any, fallback string) string {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return strconv.Itoa(int(t))
	case json.Number:
		if i, err := strconv.Atoi(t.String()); err == nil {
			return strconv.Itoa(i)
		}
	}
	return fallback
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	case json.Number:
		return t.Float64()
	default:
		return 0, errors.New("not a float")
	}
}
