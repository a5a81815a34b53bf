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

type locationInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	RoomNumber  string `json:"room_number" validate:"required,max=10"`
	Description string `json:"description" validate:"max=255"`
}

// GET /api/locations
func ListLocations(c *gin.Context) {
	query := config.DB.Preload("InventoryItems").Order("room_number ASC")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR room_number ILIKE ? OR description ILIKE ?", like, like, like)
	}

	var locations []models.Location
	if err := query.Find(&locations).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch locations", err)
		return
	}
	utils.Success(c, "locations", locations)
}

// GET /api/locations/:id
func GetLocation(c *gin.Context) {
	location, ok := findLocation(c)
	if !ok {
		return
	}
	utils.Success(c, "location", location)
}

// POST /api/locations
func CreateLocation(c *gin.Context) {
	input, ok := bindLocationInput(c)
	if !ok {
		return
	}
	if conflictingLocation(c, input, 0) {
		return
	}

	location := models.Location{
		Name:        input.Name,
		RoomNumber:  input.RoomNumber,
		Description: input.Description,
	}
	if err := config.DB.Create(&location).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to create location", err)
		return
	}
	utils.Created(c, "location created", location)
}

// PUT /api/locations/:id
func UpdateLocation(c *gin.Context) {
	location, ok := findLocation(c)
	if !ok {
		return
	}
	input, ok := bindLocationInput(c)
	if !ok {
		return
	}
	if conflictingLocation(c, input, location.ID) {
		return
	}

	location.Name = input.Name
	location.RoomNumber = input.RoomNumber
	location.Description = input.Description
	if err := config.DB.Save(location).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update location", err)
		return
	}
	utils.Success(c, "location updated", location)
}

// DELETE /api/locations/:id
// Items housed here are moved to "unassigned" with one movement row each
// before the location goes away; materials and licenses are just detached.
func DeleteLocation(c *gin.Context) {
	location, ok := findLocation(c)
	if !ok {
		return
	}

	actor := currentActor(c)
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := detachLocationItems(tx, location, service.ReasonLocationDeleted, actor); err != nil {
			return err
		}
		return tx.Delete(location).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete location", err)
		return
	}
	utils.Success(c, "location deleted", nil)
}

// GET /api/locations/check?room_number=&name=&exclude=
// Collision probe for the location form. Advisory only: nothing stops two
// concurrent creates, matching the source system.
func CheckLocation(c *gin.Context) {
	name := c.Query("name")
	roomNumber := c.Query("room_number")
	if name == "" && roomNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name or room_number is required"})
		return
	}

	query := config.DB.Model(&models.Location{}).
		Where("room_number = ? OR name = ?", roomNumber, name)
	if exclude := c.Query("exclude"); exclude != "" {
		query = query.Where("id <> ?", exclude)
	}

	var existing models.Location
	if err := query.First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"exists":      true,
			"id":          existing.ID,
			"name":        existing.Name,
			"room_number": existing.RoomNumber,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": false})
}

// GET /api/locations/:id/objects
func GetLocationObjects(c *gin.Context) {
	location, ok := findLocation(c)
	if !ok {
		return
	}

	var items []models.InventoryItem
	if err := config.DB.Where("location_id = ?", location.ID).Order("name ASC").Find(&items).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch location objects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"objects": items,
		"total":   len(items),
	})
}

// POST /api/locations/mass-delete
func MassDeleteLocations(c *gin.Context) {
	var input struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	actor := currentActor(c)
	deleted := 0

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range input.IDs {
			var location models.Location
			if err := tx.First(&location, id).Error; err != nil {
				continue
			}
			if _, err := detachLocationItems(tx, &location, service.ReasonLocationDeleted, actor); err != nil {
				return err
			}
			if err := tx.Delete(&location).Error; err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete locations", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "locations deleted",
		"deleted_count": deleted,
	})
}

// POST /api/locations/mass-move
// Moves every item out of the source locations into the target (nil target
// means "unassigned"), one movement row per moved item.
func MassMoveObjects(c *gin.Context) {
	var input struct {
		SourceLocationIDs []uint `json:"source_location_ids" binding:"required"`
		TargetLocationID  *uint  `json:"target_location_id"`
		Reason            string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if input.TargetLocationID != nil {
		var target models.Location
		if err := config.DB.First(&target, *input.TargetLocationID).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "target location not found", nil)
			return
		}
	}

	reason := input.Reason
	if reason == "" {
		reason = service.ReasonMassMove
	}
	actor := currentActor(c)
	moved := 0

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, locationID := range input.SourceLocationIDs {
			if input.TargetLocationID != nil && *input.TargetLocationID == locationID {
				continue
			}

			var items []models.InventoryItem
			if err := tx.Where("location_id = ?", locationID).Find(&items).Error; err != nil {
				return err
			}

			for i := range items {
				item := &items[i]
				log := models.MovementLog{
					InventoryItemID: item.ID,
					FromLocationID:  item.LocationID,
					ToLocationID:    input.TargetLocationID,
					MovedAt:         time.Now(),
					MovedBy:         actor,
					Reason:          reason,
				}
				if err := tx.Model(item).Update("location_id", input.TargetLocationID).Error; err != nil {
					return err
				}
				if err := tx.Create(&log).Error; err != nil {
					return err
				}
				moved++
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to move objects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "objects moved",
		"moved_count": moved,
	})
}

// detachLocationItems moves every item at the location to "unassigned",
// writing one movement row per item. Materials and licenses are detached
// without audit rows: only items carry a movement log.
func detachLocationItems(tx *gorm.DB, location *models.Location, reason, actor string) (int, error) {
	var items []models.InventoryItem
	if err := tx.Where("location_id = ?", location.ID).Find(&items).Error; err != nil {
		return 0, err
	}

	for i := range items {
		item := &items[i]
		log := models.MovementLog{
			InventoryItemID: item.ID,
			FromLocationID:  item.LocationID,
			ToLocationID:    nil,
			MovedAt:         time.Now(),
			MovedBy:         actor,
			Reason:          reason,
		}
		if err := tx.Model(item).Update("location_id", nil).Error; err != nil {
			return 0, err
		}
		if err := tx.Create(&log).Error; err != nil {
			return 0, err
		}
	}

	if err := tx.Model(&models.Material{}).Where("location_id = ?", location.ID).Update("location_id", nil).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&models.SoftwareLicense{}).Where("location_id = ?", location.ID).Update("location_id", nil).Error; err != nil {
		return 0, err
	}

	return len(items), nil
}

func bindLocationInput(c *gin.Context) (locationInput, bool) {
	var input locationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return input, false
	}
	if errs := service.ValidateStruct(input); len(errs) > 0 {
		utils.ValidationFailed(c, errs)
		return input, false
	}
	return input, true
}

// conflictingLocation rejects a create/update whose name or room number
// collides with another location. Responds 409 and returns true on conflict.
func conflictingLocation(c *gin.Context, input locationInput, excludeID uint) bool {
	query := config.DB.Model(&models.Location{}).
		Where("room_number = ? OR name = ?", input.RoomNumber, input.Name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var existing models.Location
	if err := query.First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "location with this name or room number already exists",
			"id":          existing.ID,
			"name":        existing.Name,
			"room_number": existing.RoomNumber,
		})
		return true
	}
	return false
}

func findLocation(c *gin.Context) (*models.Location, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	var location models.Location
	if err := config.DB.Preload("InventoryItems").First(&location, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return nil, false
	}
	return &location, true
}
