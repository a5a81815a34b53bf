package models

import "testing"

func TestCatalogRequiredIsSubsetOfAllowed(t *testing.T) {
	for _, cat := range Categories() {
		for _, required := range cat.RequiredSpecs {
			if !cat.AllowsSpec(required) {
				t.Errorf("category %q requires %q but does not allow it", cat.ID, required)
			}
		}
	}
}

func TestCatalogLabelsCoverAllowedKeys(t *testing.T) {
	for _, cat := range Categories() {
		labels := cat.SpecLabels()
		for _, key := range cat.AllowedSpecs {
			if labels[key] == "" {
				t.Errorf("category %q has no label for key %q", cat.ID, key)
			}
		}
	}
}

func TestCategoryByID(t *testing.T) {
	cat, ok := CategoryByID(CategoryComputer)
	if !ok {
		t.Fatal("computer must exist")
	}
	if !cat.HasSpecifications() {
		t.Error("computer must require specifications")
	}

	if _, ok := CategoryByID("fridge"); ok {
		t.Error("unknown id must not resolve")
	}
	if CategoryID("fridge").Valid() {
		t.Error("unknown id must not be valid")
	}
}

func TestCategoriesWithoutRequirements(t *testing.T) {
	for _, id := range []CategoryID{CategorySpeakers, CategoryHeadset, CategoryPhone, CategoryOther} {
		cat, ok := CategoryByID(id)
		if !ok {
			t.Fatalf("category %q not found", id)
		}
		if cat.HasSpecifications() {
			t.Errorf("category %q must not require specifications", id)
		}
	}
}

func TestAllowedOnlyCategories(t *testing.T) {
	for _, id := range []CategoryID{CategoryWebcam, CategoryUPS, CategoryTablet} {
		cat, ok := CategoryByID(id)
		if !ok {
			t.Fatalf("category %q not found", id)
		}
		if cat.HasSpecifications() {
			t.Errorf("category %q has allowed keys only, none required", id)
		}
		if len(cat.AllowedSpecs) == 0 {
			t.Errorf("category %q must allow some keys", id)
		}
	}
}

func TestSpecMapEqual(t *testing.T) {
	a := SpecMap{"ram": "16GB", "storage": "512GB"}
	b := SpecMap{"storage": "512GB", "ram": "16GB"}
	if !a.Equal(b) {
		t.Error("order must not matter")
	}

	c := SpecMap{"ram": "8GB", "storage": "512GB"}
	if a.Equal(c) {
		t.Error("different values must not be equal")
	}
	if a.Equal(SpecMap{"ram": "16GB"}) {
		t.Error("different sizes must not be equal")
	}
	if !(SpecMap{}).Equal(nil) {
		t.Error("empty and nil maps are equal")
	}
}
