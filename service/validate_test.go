package service

import "testing"

func TestValidateStructCollectsAllErrors(t *testing.T) {
	type form struct {
		Name string `json:"name" validate:"required,max=10"`
		Room string `json:"room_number" validate:"required"`
	}

	errs := ValidateStruct(form{})
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs["name"] != "this field is required" {
		t.Errorf("name error = %q", errs["name"])
	}
	if errs["room_number"] == "" {
		t.Error("errors must be keyed by json field name")
	}
}

func TestValidateStructMaxLength(t *testing.T) {
	type form struct {
		Name string `json:"name" validate:"max=3"`
	}

	errs := ValidateStruct(form{Name: "too long"})
	if errs["name"] != "must be at most 3 characters" {
		t.Errorf("name error = %q", errs["name"])
	}
}

func TestValidateStructValid(t *testing.T) {
	type form struct {
		Name string `json:"name" validate:"required"`
	}

	if errs := ValidateStruct(form{Name: "ok"}); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}
