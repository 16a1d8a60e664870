package merge

import (
	"strconv"
	"strings"

	"github.com/fypaccletsgo2025/EatooAdmin/internal/docstore"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/domain"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/geo"
)

// ValidationError reports a user-correctable problem with a promotion payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "Missing required field: " + e.Field + "."
}

// fieldRule declares precedence for one scalar target field: the overrides key
// wins when non-empty, then the source keys in order, then empty.
type fieldRule struct {
	target      string
	overrideKey string
	sourceKeys  []string
}

var scalarRules = []fieldRule{
	{target: "name", overrideKey: "name", sourceKeys: []string{"name", "businessName"}},
	{target: "businessName", overrideKey: "businessName", sourceKeys: []string{"businessName", "name"}},
	{target: "registrationNo", overrideKey: "registrationNo", sourceKeys: []string{"registrationNo"}},
	{target: "theme", overrideKey: "theme", sourceKeys: []string{"theme"}},
	{target: "address", overrideKey: "address", sourceKeys: []string{"address"}},
	{target: "city", overrideKey: "city", sourceKeys: []string{"city"}},
	{target: "state", overrideKey: "state", sourceKeys: []string{"state"}},
	{target: "postcode", overrideKey: "postcode", sourceKeys: []string{"postcode"}},
	{target: "phone", overrideKey: "phone", sourceKeys: []string{"phone"}},
	{target: "email", overrideKey: "email", sourceKeys: []string{"email"}},
	{target: "contact", overrideKey: "contact", sourceKeys: []string{"contact"}},
	{target: "website", overrideKey: "website", sourceKeys: []string{"website"}},
	{target: "note", overrideKey: "note", sourceKeys: []string{"note"}},
	{target: "ownerId", overrideKey: "ownerId", sourceKeys: []string{"ownerId"}},
}

// Build combines a source document with caller overrides into the canonical
// restaurant payload. It is a pure transform: it either returns a complete
// payload or a *ValidationError, and never touches storage.
func Build(src docstore.Document, overrides map[string]any, sourceType string) (domain.RestaurantPayload, error) {
	merged := map[string]string{}
	for _, rule := range scalarRules {
		merged[rule.target] = resolveScalar(rule, src.Fields, overrides)
	}

	cuisines := resolveList("cuisines", []string{"cuisines", "cuisine"}, src.Fields, overrides)
	ambience := resolveList("ambience", []string{"ambience"}, src.Fields, overrides)

	location := strings.TrimSpace(stringValue(overrides["location"]))
	if location == "" {
		location = strings.TrimSpace(stringValue(src.Fields["location"]))
	}
	if location == "" {
		location = joinParts(merged["address"], merged["city"], merged["state"], merged["postcode"])
	}

	coords, err := resolveCoordinates(src.Fields, overrides)
	if err != nil {
		return domain.RestaurantPayload{}, err
	}

	switch {
	case merged["name"] == "":
		return domain.RestaurantPayload{}, &ValidationError{Field: "name"}
	case len(cuisines) == 0:
		return domain.RestaurantPayload{}, &ValidationError{Field: "cuisines"}
	case location == "":
		return domain.RestaurantPayload{}, &ValidationError{Field: "location"}
	}

	ownerID := merged["ownerId"]
	if ownerID == "" {
		ownerID = src.ID
	}

	return domain.RestaurantPayload{
		Name:           merged["name"],
		BusinessName:   merged["businessName"],
		RegistrationNo: merged["registrationNo"],
		Cuisines:       cuisines,
		Theme:          merged["theme"],
		Ambience:       ambience,
		Location:       location,
		Address:        merged["address"],
		City:           merged["city"],
		State:          merged["state"],
		Postcode:       merged["postcode"],
		Phone:          merged["phone"],
		Email:          merged["email"],
		Contact:        merged["contact"],
		Website:        merged["website"],
		Map:            coords,
		Note:           merged["note"],
		Status:         domain.StatusLive,
		Type:           sourceType,
		OwnerID:        ownerID,
	}, nil
}

func resolveScalar(rule fieldRule, source, overrides map[string]any) string {
	if value := strings.TrimSpace(stringValue(overrides[rule.overrideKey])); value != "" {
		return value
	}
	for _, key := range rule.sourceKeys {
		if value := strings.TrimSpace(stringValue(source[key])); value != "" {
			return value
		}
	}
	return ""
}

func resolveList(overrideKey string, sourceKeys []string, source, overrides map[string]any) []string {
	if values := NormalizeList(overrides[overrideKey]); len(values) > 0 {
		return values
	}
	for _, key := range sourceKeys {
		if values := NormalizeList(source[key]); len(values) > 0 {
			return values
		}
	}
	return []string{}
}

func resolveCoordinates(source, overrides map[string]any) ([2]float64, error) {
	raw, ok := overrides["map"]
	if !ok || raw == nil || raw == "" {
		raw = source["map"]
	}
	if raw == nil || raw == "" {
		return [2]float64{}, &ValidationError{Field: "map", Reason: geo.ErrInvalid.Error()}
	}
	coords, err := geo.Parse(raw)
	if err != nil {
		return [2]float64{}, &ValidationError{Field: "map", Reason: err.Error()}
	}
	return coords, nil
}

func joinParts(parts ...string) string {
	kept := []string{}
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}

// NormalizeList turns any of an array, a comma-separated string, a single
// scalar, or null/false into an ordered slice of trimmed non-empty strings.
func NormalizeList(raw any) []string {
	values := []string{}
	appendValue := func(v string) {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	switch v := raw.(type) {
	case nil:
	case bool:
		// false marks an intentionally cleared list; true carries no items.
	case []string:
		for _, item := range v {
			appendValue(item)
		}
	case []any:
		for _, item := range v {
			appendValue(stringValue(item))
		}
	case string:
		for _, item := range strings.Split(v, ",") {
			appendValue(item)
		}
	default:
		appendValue(stringValue(raw))
	}
	return values
}

func stringValue(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return ""
	}
	return ""
}
