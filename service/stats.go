package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/Virus3D/invent/models"
)

// CategoryCount is one row of the per-category dashboard breakdown.
type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int64           `json:"count"`
}

// CategoryStatistics counts items per category, including zero-count
// categories, in catalog order.
func CategoryStatistics(db *gorm.DB) ([]CategoryCount, error) {
	type row struct {
		Category models.CategoryID
		Count    int64
	}
	var rows []row
	err := db.Model(&models.InventoryItem{}).
		Select("category, COUNT(id) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.CategoryID]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Count
	}

	stats := make([]CategoryCount, 0, len(models.Categories()))
	for _, cat := range models.Categories() {
		stats = append(stats, CategoryCount{Category: cat, Count: counts[cat.ID]})
	}
	return stats, nil
}

// MovementStats summarizes the movement log.
type MovementStats struct {
	TotalMovements int64      `json:"total_movements"`
	FirstMovement  *time.Time `json:"first_movement"`
	LastMovement   *time.Time `json:"last_movement"`
}

func GetMovementStats(db *gorm.DB) (MovementStats, error) {
	var stats MovementStats
	err := db.Model(&models.MovementLog{}).
		Select("COUNT(id) AS total_movements, MIN(moved_at) AS first_movement, MAX(moved_at) AS last_movement").
		Scan(&stats).Error
	return stats, err
}

// LocationStats summarizes how items spread over locations.
type LocationStats struct {
	TotalLocations    int64   `json:"total_locations"`
	OccupiedLocations int64   `json:"occupied_locations"`
	TotalObjects      int64   `json:"total_objects"`
	AvgPerLocation    float64 `json:"avg_per_location"`
	MaxPerLocation    int64   `json:"max_per_location"`
}

func GetLocationStats(db *gorm.DB) (LocationStats, error) {
	var stats LocationStats

	if err := db.Model(&models.Location{}).Count(&stats.TotalLocations).Error; err != nil {
		return stats, err
	}

	type row struct {
		LocationID uint
		Count      int64
	}
	var rows []row
	err := db.Model(&models.InventoryItem{}).
		Select("location_id, COUNT(id) AS count").
		Where("location_id IS NOT NULL").
		Group("location_id").
		Scan(&rows).Error
	if err != nil {
		return stats, err
	}

	for _, r := range rows {
		stats.OccupiedLocations++
		stats.TotalObjects += r.Count
		if r.Count > stats.MaxPerLocation {
			stats.MaxPerLocation = r.Count
		}
	}
	if stats.TotalLocations > 0 {
		stats.AvgPerLocation = float64(stats.TotalObjects) / float64(stats.TotalLocations)
	}
	return stats, nil
}
