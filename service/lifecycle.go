package service

import (
	"strings"
	"time"

	"github.com/Virus3D/invent/models"
)

// Movement log reasons. The location-change reason takes precedence when both
// the location and the specifications changed in one update.
const (
	ReasonLocationChange       = "location change"
	ReasonSpecificationsUpdate = "specifications update"
	ReasonLocationDeleted      = "location deleted"
	ReasonMassMove             = "mass move"
)

// ItemState is the slice of an inventory item the audit trail cares about.
type ItemState struct {
	LocationID     *uint
	Specifications models.SpecMap
	BalanceType    models.BalanceType
}

// StateOf captures the auditable state of an item.
func StateOf(item *models.InventoryItem) ItemState {
	return ItemState{
		LocationID:     item.LocationID,
		Specifications: item.Specifications,
		BalanceType:    item.BalanceType,
	}
}

// NewItemState is the state an item has before it exists: unassigned, no
// specifications, on balance. Creating an off-balance item therefore records
// a balance transition.
func NewItemState() ItemState {
	return ItemState{BalanceType: models.BalanceOnBalance}
}

// ItemChanges holds the audit rows a transition produced. Either field may be
// nil; both must be persisted in the same transaction as the item.
type ItemChanges struct {
	Movement *models.MovementLog
	Balance  *models.BalanceHistory
}

func (c ItemChanges) Empty() bool {
	return c.Movement == nil && c.Balance == nil
}

// DetectItemChanges compares the item's old and new state and builds the
// audit rows the transition requires. Every path that mutates an item goes
// through this function so the comparison semantics stay in one place:
// locations compare by id (nil meaning unassigned), specifications by deep
// equality. Movement logs are only emitted for updates, never for creation.
func DetectItemChanges(itemID uint, old, new ItemState, actor string, isCreate bool) ItemChanges {
	changes := ItemChanges{}
	now := time.Now()

	if !isCreate {
		locationChanged := !sameLocation(old.LocationID, new.LocationID)
		specsChanged := !old.Specifications.Equal(new.Specifications)

		if locationChanged || specsChanged {
			reason := ReasonSpecificationsUpdate
			if locationChanged {
				reason = ReasonLocationChange
			}
			changes.Movement = &models.MovementLog{
				InventoryItemID: itemID,
				FromLocationID:  old.LocationID,
				ToLocationID:    new.LocationID,
				MovedAt:         now,
				MovedBy:         actor,
				Reason:          reason,
			}
		}
	}

	if old.BalanceType != new.BalanceType {
		changes.Balance = &models.BalanceHistory{
			InventoryItemID:     itemID,
			PreviousBalanceType: old.BalanceType,
			NewBalanceType:      new.BalanceType,
			ChangedAt:           now,
		}
	}

	return changes
}

func sameLocation(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ApplyInventoryNumberRule enforces the balance/inventory-number invariant on
// every save: an on-balance item must carry an inventory number, an
// off-balance item must not. The off-balance case is auto-corrected, not an
// error. Returns field errors keyed for the response payload.
func ApplyInventoryNumberRule(item *models.InventoryItem) map[string]string {
	if item.BalanceType.IsOnBalance() && strings.TrimSpace(item.InventoryNumber) == "" {
		return map[string]string{
			"inventory_number": "inventory number is required for items on balance",
		}
	}
	if item.BalanceType.IsOffBalance() && item.InventoryNumber != "" {
		item.InventoryNumber = ""
	}
	return nil
}
