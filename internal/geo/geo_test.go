package geo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_AcceptedShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want [2]float64
	}{
		{
			name: "numeric_sequence",
			raw:  []any{101.6, 3.1},
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "geojson_point",
			raw:  map[string]any{"type": "Point", "coordinates": []any{101.6, 3.1}},
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "named_fields",
			raw:  map[string]any{"latitude": 3.1, "longitude": 101.6},
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "labeled_text",
			raw:  "lat: 3.1, lng: 101.6",
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "labeled_text_reversed_order",
			raw:  "longitude 101.6 latitude 3.1",
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "bracketed_text_pair",
			raw:  "[101.6, 3.1]",
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "bare_text_pair",
			raw:  "101.6 3.1",
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "sequence_needs_swap",
			raw:  []any{3.1, 101.6},
			want: [2]float64{101.6, 3.1},
		},
		{
			name: "sequence_no_swap_when_first_valid_longitude",
			raw:  []any{95.0, 3.1},
			want: [2]float64{95, 3.1},
		},
		{
			name: "negative_pair_swapped",
			raw:  "-33.9, 151.2",
			want: [2]float64{151.2, -33.9},
		},
		{
			name: "string_numbers_in_named_fields",
			raw:  map[string]any{"latitude": "3.1", "longitude": "101.6"},
			want: [2]float64{101.6, 3.1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := Parse(testCase.raw)
			assert.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "both_orderings_invalid", raw: []any{200.0, 10.0}},
		{name: "single_element", raw: []any{101.6}},
		{name: "three_elements", raw: []any{101.6, 3.1, 9.0}},
		{name: "labeled_out_of_range", raw: "lat: 200, lng: 10"},
		{name: "geojson_swapped_not_reinterpreted", raw: map[string]any{"type": "Point", "coordinates": []any{3.1, 101.6}}},
		{name: "named_fields_out_of_range", raw: map[string]any{"latitude": 101.6, "longitude": 3.1}},
		{name: "no_numbers", raw: "somewhere in Kuala Lumpur"},
		{name: "too_many_numbers", raw: "1.0 2.0 3.0"},
		{name: "empty_string", raw: ""},
		{name: "nil_value", raw: nil},
		{name: "unsupported_type", raw: 42},
		{name: "non_numeric_sequence", raw: []any{"x", "y"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := Parse(testCase.raw)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

// A valid pair formatted back into each accepted input shape parses to the
// same pair again.
func TestParse_RoundTrip(t *testing.T) {
	pairs := [][2]float64{
		{101.6, 3.1},
		{-73.99, 40.73},
		{151.2, -33.9},
		{0, 0},
	}

	for _, pair := range pairs {
		lon, lat := pair[0], pair[1]
		shapes := map[string]any{
			"sequence":     []any{lon, lat},
			"geojson":      map[string]any{"type": "Point", "coordinates": []any{lon, lat}},
			"named_fields": map[string]any{"longitude": lon, "latitude": lat},
			"labeled_text": fmt.Sprintf("lng: %v, lat: %v", lon, lat),
			"bare_text":    fmt.Sprintf("[%v, %v]", lon, lat),
		}

		for shape, raw := range shapes {
			got, err := Parse(raw)
			assert.NoError(t, err, "shape %s for %v", shape, pair)
			assert.Equal(t, pair, got, "shape %s", shape)
		}
	}
}
