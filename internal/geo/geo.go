package geo

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalid is returned whenever no valid [longitude, latitude] pair can be
// extracted from a submitted value. It is a user-correctable validation
// failure, not an internal error.
var ErrInvalid = errors.New("coordinates must be provided as [longitude, latitude] before promotion")

var (
	latPattern = regexp.MustCompile(`(?i)\blat(?:itude)?\b[^0-9+-]*([+-]?[0-9]+(?:\.[0-9]+)?)`)
	lonPattern = regexp.MustCompile(`(?i)\b(?:lng|lon|long|longitude)\b[^0-9+-]*([+-]?[0-9]+(?:\.[0-9]+)?)`)
	numPattern = regexp.MustCompile(`[+-]?[0-9]+(?:\.[0-9]+)?`)
)

// Parse turns a caller-supplied location value into a [longitude, latitude]
// pair. Accepted shapes, tried in order: a two-number sequence, a GeoJSON
// Point object, an object with longitude/latitude fields, free text with
// lat/lng labels, and free text holding a bare two-number pair. Parse has no
// side effects and never falls back to (0, 0).
func Parse(raw any) ([2]float64, error) {
	switch v := raw.(type) {
	case []any:
		return parseSequence(v)
	case []float64:
		if len(v) != 2 {
			return [2]float64{}, ErrInvalid
		}
		return resolvePair(v[0], v[1])
	case map[string]any:
		return parseObject(v)
	case string:
		return parseText(v)
	}
	return [2]float64{}, ErrInvalid
}

func parseSequence(seq []any) ([2]float64, error) {
	if len(seq) != 2 {
		return [2]float64{}, ErrInvalid
	}
	a, okA := toFloat(seq[0])
	b, okB := toFloat(seq[1])
	if !okA || !okB {
		return [2]float64{}, ErrInvalid
	}
	return resolvePair(a, b)
}

func parseObject(obj map[string]any) ([2]float64, error) {
	// GeoJSON Point: the coordinate order is declared by the format, so an
	// out-of-range pair fails instead of being swapped.
	if tag, ok := obj["type"].(string); ok && strings.EqualFold(tag, "Point") {
		coords, ok := obj["coordinates"].([]any)
		if !ok || len(coords) != 2 {
			return [2]float64{}, ErrInvalid
		}
		lon, okLon := toFloat(coords[0])
		lat, okLat := toFloat(coords[1])
		if !okLon || !okLat || !validLon(lon) || !validLat(lat) {
			return [2]float64{}, ErrInvalid
		}
		return [2]float64{lon, lat}, nil
	}

	lonRaw, hasLon := obj["longitude"]
	latRaw, hasLat := obj["latitude"]
	if !hasLon || !hasLat {
		return [2]float64{}, ErrInvalid
	}
	lon, okLon := toFloat(lonRaw)
	lat, okLat := toFloat(latRaw)
	if !okLon || !okLat || !validLon(lon) || !validLat(lat) {
		return [2]float64{}, ErrInvalid
	}
	return [2]float64{lon, lat}, nil
}

func parseText(text string) ([2]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return [2]float64{}, ErrInvalid
	}

	latMatch := latPattern.FindStringSubmatch(text)
	lonMatch := lonPattern.FindStringSubmatch(text)
	if latMatch != nil && lonMatch != nil {
		lat, errLat := strconv.ParseFloat(latMatch[1], 64)
		lon, errLon := strconv.ParseFloat(lonMatch[1], 64)
		if errLat != nil || errLon != nil || !validLon(lon) || !validLat(lat) {
			return [2]float64{}, ErrInvalid
		}
		return [2]float64{lon, lat}, nil
	}

	// No labels: accept a bracketed or bare pair of exactly two numbers.
	nums := numPattern.FindAllString(text, 3)
	if len(nums) != 2 {
		return [2]float64{}, ErrInvalid
	}
	a, errA := strconv.ParseFloat(nums[0], 64)
	b, errB := strconv.ParseFloat(nums[1], 64)
	if errA != nil || errB != nil {
		return [2]float64{}, ErrInvalid
	}
	return resolvePair(a, b)
}

// resolvePair interprets an unlabeled pair as longitude-first. The pair is
// swapped only when that reading is out of range while the swapped reading is
// valid; if neither reading is valid the parse fails.
func resolvePair(a, b float64) ([2]float64, error) {
	if validLon(a) && validLat(b) {
		return [2]float64{a, b}, nil
	}
	if validLat(a) && validLon(b) {
		return [2]float64{b, a}, nil
	}
	return [2]float64{}, ErrInvalid
}

func validLat(v float64) bool { return v >= -90 && v <= 90 }

func validLon(v float64) bool { return v >= -180 && v <= 180 }

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
