package service

import (
	"testing"

	"github.com/Virus3D/invent/models"
)

func mustCategory(t *testing.T, id models.CategoryID) models.Category {
	t.Helper()
	cat, ok := models.CategoryByID(id)
	if !ok {
		t.Fatalf("category %q not found", id)
	}
	return cat
}

func TestCollectSpecFieldsFromObject(t *testing.T) {
	body := map[string]any{
		"name": "Office PC",
		"specifications": map[string]any{
			"processor": "i5-12400",
			"ram":       "16GB",
		},
	}

	raw := CollectSpecFields(body)
	if len(raw) != 2 {
		t.Fatalf("got %d fields, want 2: %v", len(raw), raw)
	}
	if raw["processor"] != "i5-12400" {
		t.Errorf("processor = %q", raw["processor"])
	}
	if raw["ram"] != "16GB" {
		t.Errorf("ram = %q", raw["ram"])
	}
}

func TestCollectSpecFieldsFromEncodedString(t *testing.T) {
	body := map[string]any{
		"specifications": `{"processor":"Ryzen 5","storage":"512GB SSD"}`,
	}

	raw := CollectSpecFields(body)
	if raw["processor"] != "Ryzen 5" {
		t.Errorf("processor = %q", raw["processor"])
	}
	if raw["storage"] != "512GB SSD" {
		t.Errorf("storage = %q", raw["storage"])
	}
}

func TestCollectSpecFieldsDiscreteWinsOverBlob(t *testing.T) {
	body := map[string]any{
		"specifications": map[string]any{
			"processor": "old value",
			"ram":       "8GB",
		},
		"spec_processor": "i7-13700",
	}

	raw := CollectSpecFields(body)
	if raw["processor"] != "i7-13700" {
		t.Errorf("discrete field must win, got %q", raw["processor"])
	}
	if raw["ram"] != "8GB" {
		t.Errorf("ram = %q", raw["ram"])
	}
}

func TestCollectSpecFieldsStringifiesScalars(t *testing.T) {
	body := map[string]any{
		"specifications": map[string]any{
			"size": float64(27),
			"poe":  true,
		},
	}

	raw := CollectSpecFields(body)
	if raw["size"] != "27" {
		t.Errorf("size = %q, want 27", raw["size"])
	}
	if raw["poe"] != "true" {
		t.Errorf("poe = %q, want true", raw["poe"])
	}
}

func TestCollectSpecFieldsIgnoresMalformedBlob(t *testing.T) {
	body := map[string]any{
		"specifications": `not json at all`,
		"spec_type":      "laser",
	}

	raw := CollectSpecFields(body)
	if len(raw) != 1 || raw["type"] != "laser" {
		t.Errorf("got %v, want only type=laser", raw)
	}
}

func TestNormalizeSpecificationsDropsDisallowedAndBlank(t *testing.T) {
	cat := mustCategory(t, models.CategoryComputer)

	specs := NormalizeSpecifications(cat, map[string]string{
		"processor":     "  i5-12400  ",
		"ram":           "   ",
		"wifi_standard": "ax", // network-only key
	})

	if got := specs["processor"]; got != "i5-12400" {
		t.Errorf("processor = %q, want trimmed value", got)
	}
	if _, ok := specs["ram"]; ok {
		t.Error("blank value must be dropped")
	}
	if _, ok := specs["wifi_standard"]; ok {
		t.Error("key not allowed for computer must be dropped")
	}
}

func TestNormalizeSpecificationsIdempotent(t *testing.T) {
	cat := mustCategory(t, models.CategoryComputer)

	once := NormalizeSpecifications(cat, map[string]string{
		"processor": " i5 ",
		"ram":       "16GB",
		"storage":   "512GB",
	})
	twice := NormalizeSpecifications(cat, map[string]string(once))

	if !once.Equal(twice) {
		t.Errorf("normalizing twice changed the result: %v vs %v", once, twice)
	}
}

func TestValidateRequiredSpecsReportsEveryMissingKey(t *testing.T) {
	cat := mustCategory(t, models.CategoryComputer)

	errs := ValidateRequiredSpecs(cat, models.SpecMap{"processor": "i5"})

	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	for _, field := range []string{"spec_ram", "spec_storage"} {
		if errs[field] == "" {
			t.Errorf("missing error for %s", field)
		}
	}
}

func TestValidateRequiredSpecsPassesWhenComplete(t *testing.T) {
	cat := mustCategory(t, models.CategoryComputer)

	errs := ValidateRequiredSpecs(cat, models.SpecMap{
		"processor": "i5",
		"ram":       "16GB",
		"storage":   "512GB",
	})
	if len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidateRequiredSpecsNoRequirements(t *testing.T) {
	cat := mustCategory(t, models.CategorySpeakers)

	if errs := ValidateRequiredSpecs(cat, models.SpecMap{}); len(errs) != 0 {
		t.Errorf("speakers require no specs, got %v", errs)
	}
}
