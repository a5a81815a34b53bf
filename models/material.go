package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Material struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"quantity"`
	Checked     bool            `gorm:"not null;default:false" json:"checked"`
	LocationID  *uint           `json:"location_id"`
	Location    *Location       `gorm:"constraint:OnDelete:SET NULL" json:"location,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Material) TableName() string { return "material" }
