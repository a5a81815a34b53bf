package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JSONMap is a free-form JSON column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONMap")
	}
	return json.Unmarshal(data, m)
}

// BalanceHistory is an append-only record of an item's balance-type
// transitions. It cascade-deletes with its item.
type BalanceHistory struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	InventoryItemID     uint           `gorm:"not null" json:"inventory_item_id"`
	InventoryItem       *InventoryItem `gorm:"constraint:OnDelete:CASCADE" json:"inventory_item,omitempty"`
	PreviousBalanceType BalanceType    `gorm:"size:20;not null" json:"previous_balance_type"`
	NewBalanceType      BalanceType    `gorm:"size:20;not null" json:"new_balance_type"`
	Reason              string         `gorm:"type:text" json:"reason"`
	ChangedBy           string         `gorm:"size:255" json:"changed_by"`
	ChangedAt           time.Time      `gorm:"not null" json:"changed_at"`
	AdditionalData      JSONMap        `gorm:"type:jsonb" json:"additional_data,omitempty"`
}

func (BalanceHistory) TableName() string { return "balance_history" }

// ChangeType describes the direction of the transition for display.
func (h *BalanceHistory) ChangeType() string {
	switch {
	case h.PreviousBalanceType.IsOnBalance() && h.NewBalanceType.IsOffBalance():
		return "moved off balance"
	case h.PreviousBalanceType.IsOffBalance() && h.NewBalanceType.IsOnBalance():
		return "returned to balance"
	}
	return "balance status change"
}
