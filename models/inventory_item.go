package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// SpecMap stores category-specific key/value specifications as a JSON column.
type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		m = SpecMap{}
	}
	return json.Marshal(m)
}

func (m *SpecMap) Scan(value any) error {
	if value == nil {
		*m = SpecMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for SpecMap")
	}
	if len(data) == 0 {
		*m = SpecMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Equal compares two spec maps by keys and values.
func (m SpecMap) Equal(other SpecMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

type InventoryItem struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	Name              string              `gorm:"size:200;not null" json:"name"`
	Description       string              `gorm:"type:text" json:"description"`
	InventoryNumber   string              `gorm:"size:50" json:"inventory_number"`
	SerialNumber      string              `gorm:"size:100" json:"serial_number"`
	Category          CategoryID          `gorm:"size:20;not null" json:"category"`
	BalanceType       BalanceType         `gorm:"size:20;not null" json:"balance_type"`
	Status            ItemStatus          `gorm:"size:20;not null" json:"status"`
	Type              ItemType            `gorm:"size:20;not null" json:"type"`
	PurchasePrice     decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"purchase_price"`
	PurchaseDate      *time.Time          `gorm:"type:date" json:"purchase_date"`
	CommissioningDate *time.Time          `gorm:"type:date" json:"commissioning_date"`
	ResponsiblePerson string              `gorm:"size:255" json:"responsible_person"`
	Specifications    SpecMap             `gorm:"type:jsonb" json:"specifications"`
	Checked           bool                `gorm:"not null;default:false" json:"checked"`
	LocationID        *uint               `json:"location_id"`
	Location          *Location           `gorm:"constraint:OnDelete:SET NULL" json:"location,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`

	MovementLogs     []MovementLog    `gorm:"foreignKey:InventoryItemID" json:"-"`
	BalanceHistories []BalanceHistory `gorm:"foreignKey:InventoryItemID" json:"-"`
}

func (InventoryItem) TableName() string { return "inventory_item" }

func (i *InventoryItem) IsOnBalance() bool  { return i.BalanceType.IsOnBalance() }
func (i *InventoryItem) IsOffBalance() bool { return i.BalanceType.IsOffBalance() }
