package controllers

import (
	"net/http"

	"github.com/Virus3D/invent/config"
	"github.com/Virus3D/invent/models"
	"github.com/Virus3D/invent/service"
	"github.com/Virus3D/invent/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard
// Aggregated landing-page view: entity counts, the per-category breakdown
// with zero-count categories included, and movement/location summaries.
func Dashboard(c *gin.Context) {
	db := config.DB

	var itemCount, locationCount, materialCount, licenseCount int64
	counters := []struct {
		model any
		dst   *int64
	}{
		{&models.InventoryItem{}, &itemCount},
		{&models.Location{}, &locationCount},
		{&models.Material{}, &materialCount},
		{&models.SoftwareLicense{}, &licenseCount},
	}
	for _, counter := range counters {
		if err := db.Model(counter.model).Count(counter.dst).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "failed to load dashboard", err)
			return
		}
	}

	categoryStats, err := service.CategoryStatistics(db)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load category statistics", err)
		return
	}
	movementStats, err := service.GetMovementStats(db)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load movement statistics", err)
		return
	}
	locationStats, err := service.GetLocationStats(db)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load location statistics", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts": gin.H{
			"inventory_items":   itemCount,
			"locations":         locationCount,
			"materials":         materialCount,
			"software_licenses": licenseCount,
		},
		"categories": categoryStats,
		"movements":  movementStats,
		"locations":  locationStats,
	})
}

// GET /api/dashboard/categories
func CategoryStatistics(c *gin.Context) {
	stats, err := service.CategoryStatistics(config.DB)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load category statistics", err)
		return
	}
	utils.Success(c, "category statistics", stats)
}
