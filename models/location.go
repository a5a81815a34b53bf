package models

import "fmt"

type Location struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	RoomNumber  string `gorm:"size:10;not null" json:"room_number"`
	Description string `gorm:"size:255" json:"description"`

	InventoryItems   []InventoryItem   `gorm:"foreignKey:LocationID" json:"inventory_items,omitempty"`
	Materials        []Material        `gorm:"foreignKey:LocationID" json:"materials,omitempty"`
	SoftwareLicenses []SoftwareLicense `gorm:"foreignKey:LocationID" json:"software_licenses,omitempty"`
}

func (Location) TableName() string { return "location" }

func (l *Location) String() string {
	return fmt.Sprintf("%s (room %s)", l.Name, l.RoomNumber)
}
