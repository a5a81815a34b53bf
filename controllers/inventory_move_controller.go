package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Virus3D/invent/config"
	"github.com/Virus3D/invent/models"
	"github.com/Virus3D/invent/service"
	"github.com/Virus3D/invent/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /api/inventory/:id/move
func MoveInventoryItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var input struct {
		ToLocationID *uint  `json:"to_location_id"`
		Reason       string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if input.ToLocationID != nil {
		var target models.Location
		if err := config.DB.First(&target, *input.ToLocationID).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "target location not found", nil)
			return
		}
	}

	reason := input.Reason
	if reason == "" {
		reason = service.ReasonLocationChange
	}

	log := models.MovementLog{
		InventoryItemID: item.ID,
		FromLocationID:  item.LocationID,
		ToLocationID:    input.ToLocationID,
		MovedAt:         time.Now(),
		MovedBy:         currentActor(c),
		Reason:          reason,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Update("location_id", input.ToLocationID).Error; err != nil {
			return err
		}
		return tx.Create(&log).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to move inventory item", err)
		return
	}

	utils.Success(c, "movement registered", log)
}

// POST /api/inventory/:id/balance
// Explicit balance transfer: unlike a generic field update, the produced
// history row carries the reason and the acting user.
func MoveItemToBalance(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var input struct {
		BalanceType string `json:"balance_type" binding:"required"`
		Reason      string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	newBalance := models.BalanceType(input.BalanceType)
	if !newBalance.Valid() {
		utils.ValidationFailed(c, map[string]string{"balance_type": "invalid balance type"})
		return
	}

	oldState := service.StateOf(item)
	item.BalanceType = newBalance

	if errs := service.ApplyInventoryNumberRule(item); len(errs) > 0 {
		utils.ValidationFailed(c, errs)
		return
	}

	actor := currentActor(c)
	changes := service.DetectItemChanges(item.ID, oldState, service.StateOf(item), actor, false)
	if changes.Balance != nil {
		changes.Balance.Reason = input.Reason
		changes.Balance.ChangedBy = actor
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if changes.Balance != nil {
			return tx.Create(changes.Balance).Error
		}
		return nil
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to change balance type", err)
		return
	}

	utils.Success(c, "balance type updated", item)
}

// GET /api/inventory/:id/movements
func ListItemMovements(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var logs []models.MovementLog
	err := config.DB.
		Preload("FromLocation").
		Preload("ToLocation").
		Where("inventory_item_id = ?", item.ID).
		Order("moved_at DESC").
		Find(&logs).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch movement log", err)
		return
	}
	utils.Success(c, "movement log", logs)
}

// GET /api/inventory/:id/balance-history
func ListItemBalanceHistory(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var history []models.BalanceHistory
	err := config.DB.
		Where("inventory_item_id = ?", item.ID).
		Order("changed_at DESC").
		Find(&history).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch balance history", err)
		return
	}
	utils.Success(c, "balance history", history)
}

// GET /api/movements/recent
func RecentMovements(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var logs []models.MovementLog
	err := config.DB.
		Preload("InventoryItem").
		Preload("FromLocation").
		Preload("ToLocation").
		Order("moved_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch movements", err)
		return
	}
	utils.Success(c, "recent movements", logs)
}
