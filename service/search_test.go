package service

import "testing"

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort      string
		direction string
		want      string
	}{
		{"name", "asc", "name ASC"},
		{"name", "desc", "name DESC"},
		{"name", "DESC", "name DESC"},
		{"inventory_number", "desc", "inventory_number DESC"},
		{"inventoryNumber", "desc", "inventory_number DESC"},
		{"created_at", "", "created_at ASC"},
		{"category", "asc", "category ASC"},
		{"", "", "name ASC"},
		{"id; DROP TABLE inventory_item", "desc", "name ASC"},
		{"location_id", "asc", "name ASC"},
	}

	for _, tt := range tests {
		if got := orderClause(tt.sort, tt.direction); got != tt.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tt.sort, tt.direction, got, tt.want)
		}
	}
}
