package models

// BalanceType says whether an item is carried on the organization's balance
// sheet or only tracked off-balance.
type BalanceType string

const (
	BalanceOnBalance  BalanceType = "on_balance"
	BalanceOffBalance BalanceType = "off_balance"
)

func (b BalanceType) Valid() bool {
	return b == BalanceOnBalance || b == BalanceOffBalance
}

func (b BalanceType) IsOnBalance() bool {
	return b == BalanceOnBalance
}

func (b BalanceType) IsOffBalance() bool {
	return b == BalanceOffBalance
}

// ItemStatus is the operational state of an inventory item.
type ItemStatus string

const (
	StatusAvailable     ItemStatus = "available"
	StatusInUse         ItemStatus = "in_use"
	StatusUnderRepair   ItemStatus = "under_repair"
	StatusWrittenOff    ItemStatus = "written_off"
	StatusLost          ItemStatus = "lost"
	StatusReserved      ItemStatus = "reserved"
	StatusOnMaintenance ItemStatus = "on_maintenance"
	StatusNew           ItemStatus = "new"
	StatusBroken        ItemStatus = "broken"
	StatusForParts      ItemStatus = "for_parts"
)

// ItemStatuses lists every status in display order.
var ItemStatuses = []ItemStatus{
	StatusAvailable,
	StatusInUse,
	StatusUnderRepair,
	StatusWrittenOff,
	StatusLost,
	StatusReserved,
	StatusOnMaintenance,
	StatusNew,
	StatusBroken,
	StatusForParts,
}

func (s ItemStatus) Valid() bool {
	for _, known := range ItemStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsActive reports whether the status counts as an active asset state.
func (s ItemStatus) IsActive() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusUnderRepair, StatusReserved, StatusOnMaintenance:
		return true
	}
	return false
}

// ItemType is the accounting classification of the item.
type ItemType string

const (
	TypeFixedAsset ItemType = "fixed_asset"
	TypeTool       ItemType = "tool"
	TypeMaterial   ItemType = "material"
)

func (t ItemType) Valid() bool {
	return t == TypeFixedAsset || t == TypeTool || t == TypeMaterial
}

// CanBeWrittenOff reports whether items of this type go through write-off.
func (t ItemType) CanBeWrittenOff() bool {
	return t == TypeFixedAsset || t == TypeTool
}
