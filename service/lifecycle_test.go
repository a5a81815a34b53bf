package service

import (
	"testing"

	"github.com/Virus3D/invent/models"
)

func uintPtr(v uint) *uint { return &v }

func TestDetectItemChangesLocationMove(t *testing.T) {
	old := ItemState{LocationID: uintPtr(1), BalanceType: models.BalanceOnBalance}
	new := ItemState{LocationID: uintPtr(2), BalanceType: models.BalanceOnBalance}

	changes := DetectItemChanges(7, old, new, "alice", false)
	if changes.Movement == nil {
		t.Fatal("expected a movement log")
	}
	if changes.Balance != nil {
		t.Error("balance did not change, no history row expected")
	}

	m := changes.Movement
	if m.InventoryItemID != 7 {
		t.Errorf("item id = %d", m.InventoryItemID)
	}
	if m.FromLocationID == nil || *m.FromLocationID != 1 {
		t.Errorf("from = %v", m.FromLocationID)
	}
	if m.ToLocationID == nil || *m.ToLocationID != 2 {
		t.Errorf("to = %v", m.ToLocationID)
	}
	if m.Reason != ReasonLocationChange {
		t.Errorf("reason = %q", m.Reason)
	}
	if m.MovedBy != "alice" {
		t.Errorf("moved by = %q", m.MovedBy)
	}
}

func TestDetectItemChangesSpecsOnly(t *testing.T) {
	loc := uintPtr(3)
	old := ItemState{
		LocationID:     loc,
		Specifications: models.SpecMap{"ram": "8GB"},
		BalanceType:    models.BalanceOnBalance,
	}
	new := ItemState{
		LocationID:     loc,
		Specifications: models.SpecMap{"ram": "16GB"},
		BalanceType:    models.BalanceOnBalance,
	}

	changes := DetectItemChanges(1, old, new, "bob", false)
	if changes.Movement == nil {
		t.Fatal("spec change must produce a movement log")
	}
	if changes.Movement.Reason != ReasonSpecificationsUpdate {
		t.Errorf("reason = %q", changes.Movement.Reason)
	}
	if *changes.Movement.FromLocationID != *changes.Movement.ToLocationID {
		t.Error("spec-only change must keep from == to")
	}
}

func TestDetectItemChangesLocationReasonWins(t *testing.T) {
	old := ItemState{
		LocationID:     uintPtr(1),
		Specifications: models.SpecMap{"ram": "8GB"},
		BalanceType:    models.BalanceOnBalance,
	}
	new := ItemState{
		LocationID:     uintPtr(2),
		Specifications: models.SpecMap{"ram": "16GB"},
		BalanceType:    models.BalanceOnBalance,
	}

	changes := DetectItemChanges(1, old, new, "bob", false)
	if changes.Movement == nil {
		t.Fatal("expected a movement log")
	}
	if changes.Movement.Reason != ReasonLocationChange {
		t.Errorf("location change must take precedence, got %q", changes.Movement.Reason)
	}
}

func TestDetectItemChangesNoOp(t *testing.T) {
	state := ItemState{
		LocationID:     uintPtr(5),
		Specifications: models.SpecMap{"size": "27"},
		BalanceType:    models.BalanceOnBalance,
	}

	changes := DetectItemChanges(1, state, state, "bob", false)
	if !changes.Empty() {
		t.Errorf("no-op update produced audit rows: %+v", changes)
	}
}

func TestDetectItemChangesBalanceTransition(t *testing.T) {
	old := ItemState{BalanceType: models.BalanceOnBalance}
	new := ItemState{BalanceType: models.BalanceOffBalance}

	changes := DetectItemChanges(4, old, new, "alice", false)
	if changes.Balance == nil {
		t.Fatal("expected a balance history row")
	}
	if changes.Balance.PreviousBalanceType != models.BalanceOnBalance {
		t.Errorf("previous = %q", changes.Balance.PreviousBalanceType)
	}
	if changes.Balance.NewBalanceType != models.BalanceOffBalance {
		t.Errorf("new = %q", changes.Balance.NewBalanceType)
	}
}

func TestDetectItemChangesCreateSkipsMovement(t *testing.T) {
	new := ItemState{LocationID: uintPtr(2), BalanceType: models.BalanceOnBalance}

	changes := DetectItemChanges(0, NewItemState(), new, "alice", true)
	if changes.Movement != nil {
		t.Error("creation must not produce a movement log")
	}
	if changes.Balance != nil {
		t.Error("on-balance creation must not produce a history row")
	}
}

func TestDetectItemChangesOffBalanceCreateLogsTransition(t *testing.T) {
	new := ItemState{BalanceType: models.BalanceOffBalance}

	changes := DetectItemChanges(0, NewItemState(), new, "alice", true)
	if changes.Balance == nil {
		t.Fatal("creating an off-balance item must record the transition")
	}
	if changes.Balance.PreviousBalanceType != models.BalanceOnBalance {
		t.Errorf("previous = %q", changes.Balance.PreviousBalanceType)
	}
}

func TestDetectItemChangesUnassignedToLocation(t *testing.T) {
	old := ItemState{BalanceType: models.BalanceOnBalance}
	new := ItemState{LocationID: uintPtr(9), BalanceType: models.BalanceOnBalance}

	changes := DetectItemChanges(1, old, new, "alice", false)
	if changes.Movement == nil {
		t.Fatal("assigning a location must produce a movement log")
	}
	if changes.Movement.FromLocationID != nil {
		t.Errorf("from = %v, want nil", changes.Movement.FromLocationID)
	}
}

func TestApplyInventoryNumberRuleOnBalanceRequiresNumber(t *testing.T) {
	item := &models.InventoryItem{
		BalanceType:     models.BalanceOnBalance,
		InventoryNumber: "   ",
	}
	errs := ApplyInventoryNumberRule(item)
	if errs["inventory_number"] == "" {
		t.Error("blank inventory number on balance must be rejected")
	}
}

func TestApplyInventoryNumberRuleOnBalanceKeepsNumber(t *testing.T) {
	item := &models.InventoryItem{
		BalanceType:     models.BalanceOnBalance,
		InventoryNumber: "INV-001",
	}
	if errs := ApplyInventoryNumberRule(item); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
	if item.InventoryNumber != "INV-001" {
		t.Errorf("inventory number modified: %q", item.InventoryNumber)
	}
}

func TestApplyInventoryNumberRuleOffBalanceClearsNumber(t *testing.T) {
	item := &models.InventoryItem{
		BalanceType:     models.BalanceOffBalance,
		InventoryNumber: "INV-001",
	}
	errs := ApplyInventoryNumberRule(item)
	if len(errs) != 0 {
		t.Errorf("clearing is silent, got errors: %v", errs)
	}
	if item.InventoryNumber != "" {
		t.Errorf("inventory number not cleared: %q", item.InventoryNumber)
	}
}
