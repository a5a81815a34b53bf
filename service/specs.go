package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Virus3D/invent/models"
)

// specFieldPrefix marks discrete specification fields in a request body,
// e.g. "spec_processor".
const specFieldPrefix = "spec_"

// CollectSpecFields extracts raw specification values from a decoded request
// body. Specifications may arrive as a "specifications" field holding either
// a JSON object or a JSON-encoded string, merged with discrete spec_*-prefixed
// fields. Discrete fields win on key collision.
func CollectSpecFields(body map[string]any) map[string]string {
	raw := map[string]string{}

	switch specs := body["specifications"].(type) {
	case map[string]any:
		for key, value := range specs {
			if s, ok := stringifySpec(value); ok {
				raw[key] = s
			}
		}
	case string:
		var decoded map[string]any
		if err := json.Unmarshal([]byte(specs), &decoded); err == nil {
			for key, value := range decoded {
				if s, ok := stringifySpec(value); ok {
					raw[key] = s
				}
			}
		}
	}

	for key, value := range body {
		if !strings.HasPrefix(key, specFieldPrefix) {
			continue
		}
		if s, ok := stringifySpec(value); ok && s != "" {
			raw[strings.TrimPrefix(key, specFieldPrefix)] = s
		}
	}

	return raw
}

func stringifySpec(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// NormalizeSpecifications trims every value, drops values empty after
// trimming, and drops keys the category does not allow. The result contains
// only allowed keys with non-empty values; applying it twice is a no-op.
func NormalizeSpecifications(cat models.Category, raw map[string]string) models.SpecMap {
	specs := models.SpecMap{}
	for key, value := range raw {
		if !cat.AllowsSpec(key) {
			continue
		}
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		specs[key] = trimmed
	}
	return specs
}

// ValidateRequiredSpecs returns one field error per required key missing or
// blank in specs. The error field is the discrete form field name so the
// caller can render it next to the input.
func ValidateRequiredSpecs(cat models.Category, specs models.SpecMap) map[string]string {
	errs := map[string]string{}
	for _, key := range cat.RequiredSpecs {
		if strings.TrimSpace(specs[key]) == "" {
			errs[specFieldPrefix+key] = fmt.Sprintf(
				"specification %q is required for category %q", key, cat.ID,
			)
		}
	}
	return errs
}
