package models

import "time"

// SystemActor is recorded as the mover for changes not driven by a user.
const SystemActor = "system"

// MovementLog is an append-only record of an item changing location or
// specifications. Rows are never updated; they disappear only when the item
// itself is deleted.
type MovementLog struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	InventoryItemID uint           `gorm:"not null" json:"inventory_item_id"`
	InventoryItem   *InventoryItem `gorm:"constraint:OnDelete:CASCADE" json:"inventory_item,omitempty"`
	FromLocationID  *uint          `json:"from_location_id"`
	FromLocation    *Location      `gorm:"constraint:OnDelete:SET NULL" json:"from_location,omitempty"`
	ToLocationID    *uint          `json:"to_location_id"`
	ToLocation      *Location      `gorm:"constraint:OnDelete:SET NULL" json:"to_location,omitempty"`
	MovedAt         time.Time      `gorm:"not null" json:"moved_at"`
	Reason          string         `gorm:"size:255" json:"reason"`
	MovedBy         string         `gorm:"size:100;not null" json:"moved_by"`
}

func (MovementLog) TableName() string { return "movement_log" }
