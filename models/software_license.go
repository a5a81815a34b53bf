package models

import "time"

type SoftwareLicense struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:200;not null" json:"name"`
	LicenseKey string     `gorm:"size:255" json:"license_key"`
	StartDate  time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date"`
	Valid      bool       `gorm:"not null;default:true" json:"valid"`
	LocationID *uint      `json:"location_id"`
	Location   *Location  `gorm:"constraint:OnDelete:SET NULL" json:"location,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (SoftwareLicense) TableName() string { return "software_license" }

// IsPerpetual reports whether the license has no expiry date.
func (l *SoftwareLicense) IsPerpetual() bool {
	return l.EndDate == nil
}
