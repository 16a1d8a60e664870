package merge

import (
	"testing"

	"github.com/fypaccletsgo2025/EatooAdmin/internal/docstore"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sourceDoc(fields map[string]any) docstore.Document {
	return docstore.Document{ID: "S1", Fields: fields}
}

func TestBuild_OverridesWinOverSource(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "Old Name",
		"cuisines": "malay",
		"location": "Old Town",
		"map":      []any{101.6, 3.1},
		"phone":    "03-1234",
	})
	overrides := map[string]any{
		"name":  "New Name",
		"phone": "",
	}

	payload, err := Build(src, overrides, domain.SourceTypeUser)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", payload.Name)
	// Empty override falls back to the source value.
	assert.Equal(t, "03-1234", payload.Phone)
	assert.Equal(t, "Old Town", payload.Location)
	assert.Equal(t, domain.StatusLive, payload.Status)
	assert.Equal(t, domain.SourceTypeUser, payload.Type)
}

func TestBuild_LocationFallsBackToJoinedAddressParts(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "A",
		"cuisines": "malay",
		"location": "",
		"address":  "1 St",
		"city":     "X",
		"state":    "Y",
		"postcode": "1",
		"map":      []any{101.6, 3.1},
	})

	payload, err := Build(src, map[string]any{}, domain.SourceTypeUser)
	assert.NoError(t, err)
	assert.Equal(t, "1 St, X, Y, 1", payload.Location)
}

func TestBuild_LocationJoinSkipsEmptyParts(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "A",
		"cuisines": "malay",
		"address":  "1 St",
		"city":     "",
		"state":    "Y",
		"map":      []any{101.6, 3.1},
	})

	payload, err := Build(src, map[string]any{}, domain.SourceTypeUser)
	assert.NoError(t, err)
	assert.Equal(t, "1 St, Y", payload.Location)
}

func TestBuild_LocationJoinUsesMergedParts(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "A",
		"cuisines": "malay",
		"address":  "1 St",
		"city":     "X",
		"map":      []any{101.6, 3.1},
	})
	overrides := map[string]any{"city": "Kuala Lumpur"}

	payload, err := Build(src, overrides, domain.SourceTypeUser)
	assert.NoError(t, err)
	assert.Equal(t, "1 St, Kuala Lumpur", payload.Location)
}

func TestBuild_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]any
		wantField string
	}{
		{
			name: "missing_name",
			fields: map[string]any{
				"cuisines": "malay",
				"location": "KL",
				"map":      []any{101.6, 3.1},
			},
			wantField: "name",
		},
		{
			name: "missing_cuisines",
			fields: map[string]any{
				"name":     "A",
				"location": "KL",
				"map":      []any{101.6, 3.1},
			},
			wantField: "cuisines",
		},
		{
			name: "missing_location",
			fields: map[string]any{
				"name":     "A",
				"cuisines": "malay",
				"map":      []any{101.6, 3.1},
			},
			wantField: "location",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := Build(sourceDoc(testCase.fields), map[string]any{}, domain.SourceTypeUser)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, testCase.wantField, verr.Field)
		})
	}
}

func TestBuild_CoordinatesRequired(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "A",
		"cuisines": "malay",
		"location": "KL",
	})

	_, err := Build(src, map[string]any{}, domain.SourceTypeUser)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "map", verr.Field)
	assert.Contains(t, verr.Error(), "[longitude, latitude]")
}

func TestBuild_UnparseableCoordinatesFail(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "A",
		"cuisines": "malay",
		"location": "KL",
		"map":      "no numbers here",
	})

	_, err := Build(src, map[string]any{}, domain.SourceTypeUser)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "map", verr.Field)
}

func TestBuild_CoordinateOverrideWins(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "A",
		"cuisines": "malay",
		"location": "KL",
		"map":      []any{10.0, 10.0},
	})
	overrides := map[string]any{"map": "lat: 3.1, lng: 101.6"}

	payload, err := Build(src, overrides, domain.SourceTypeUser)
	assert.NoError(t, err)
	assert.Equal(t, [2]float64{101.6, 3.1}, payload.Map)
}

func TestBuild_OwnerIDFallsBackToSourceID(t *testing.T) {
	src := sourceDoc(map[string]any{
		"name":     "A",
		"cuisines": "malay",
		"location": "KL",
		"map":      []any{101.6, 3.1},
	})

	payload, err := Build(src, map[string]any{}, domain.SourceTypeOwner)
	assert.NoError(t, err)
	assert.Equal(t, "S1", payload.OwnerID)
	assert.Equal(t, domain.SourceTypeOwner, payload.Type)
}

func TestBuild_OwnerNameFallsBackToBusinessName(t *testing.T) {
	src := sourceDoc(map[string]any{
		"businessName": "Nasi Kandar Sdn Bhd",
		"cuisines":     "mamak",
		"location":     "Penang",
		"map":          []any{100.3, 5.4},
	})

	payload, err := Build(src, map[string]any{}, domain.SourceTypeOwner)
	assert.NoError(t, err)
	assert.Equal(t, "Nasi Kandar Sdn Bhd", payload.Name)
}

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{name: "array_of_strings", raw: []any{"malay", "thai"}, want: []string{"malay", "thai"}},
		{name: "comma_separated", raw: " malay, thai ,,chinese ", want: []string{"malay", "thai", "chinese"}},
		{name: "single_scalar", raw: "malay", want: []string{"malay"}},
		{name: "nil", raw: nil, want: []string{}},
		{name: "false", raw: false, want: []string{}},
		{name: "empty_string", raw: "", want: []string{}},
		{name: "blank_entries_dropped", raw: []any{" ", "thai"}, want: []string{"thai"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, NormalizeList(testCase.raw))
		})
	}
}
