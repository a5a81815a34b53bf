package controllers

import (
	"net/http"
	"strconv"

	"github.com/Virus3D/invent/config"
	"github.com/Virus3D/invent/models"
	"github.com/Virus3D/invent/service"
	"github.com/Virus3D/invent/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type materialInput struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	LocationID  *uint            `json:"location_id"`
}

// GET /api/materials
func ListMaterials(c *gin.Context) {
	query := config.DB.Preload("Location").Order("name ASC")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var materials []models.Material
	if err := query.Find(&materials).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch materials", err)
		return
	}
	utils.Success(c, "materials", materials)
}

// GET /api/materials/:id
func GetMaterial(c *gin.Context) {
	material, ok := findMaterial(c)
	if !ok {
		return
	}
	utils.Success(c, "material", material)
}

// POST /api/materials
func CreateMaterial(c *gin.Context) {
	material := models.Material{}
	if !applyMaterialInput(c, &material) {
		return
	}
	if err := config.DB.Create(&material).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to create material", err)
		return
	}
	utils.Created(c, "material created", material)
}

// PUT /api/materials/:id
func UpdateMaterial(c *gin.Context) {
	material, ok := findMaterial(c)
	if !ok {
		return
	}
	if !applyMaterialInput(c, material) {
		return
	}
	if err := config.DB.Save(material).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update material", err)
		return
	}
	utils.Success(c, "material updated", material)
}

// DELETE /api/materials/:id
func DeleteMaterial(c *gin.Context) {
	material, ok := findMaterial(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(material).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete material", err)
		return
	}
	utils.Success(c, "material deleted", nil)
}

// POST /api/materials/:id/check
func ToggleMaterialCheck(c *gin.Context) {
	material, ok := findMaterial(c)
	if !ok {
		return
	}

	var input struct {
		Checked bool `json:"checked"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := config.DB.Model(material).Update("checked", input.Checked).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update check mark", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checked": input.Checked})
}

// POST /api/materials/check/reset
func ResetMaterialChecks(c *gin.Context) {
	if err := config.DB.Exec("UPDATE material SET checked = false").Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to reset check marks", err)
		return
	}
	utils.Success(c, "check marks reset", nil)
}

func applyMaterialInput(c *gin.Context, material *models.Material) bool {
	var input materialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return false
	}

	errs := service.ValidateStruct(input)
	if input.Quantity != nil && input.Quantity.IsNegative() {
		errs["quantity"] = "quantity must not be negative"
	}
	if len(errs) > 0 {
		utils.ValidationFailed(c, errs)
		return false
	}

	if input.LocationID != nil {
		var location models.Location
		if err := config.DB.First(&location, *input.LocationID).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "location not found", nil)
			return false
		}
	}

	material.Name = input.Name
	material.Description = input.Description
	material.Quantity = decimal.Zero
	if input.Quantity != nil {
		material.Quantity = *input.Quantity
	}
	material.LocationID = input.LocationID
	material.Location = nil
	return true
}

func findMaterial(c *gin.Context) (*models.Material, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	var material models.Material
	if err := config.DB.Preload("Location").First(&material, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
		return nil, false
	}
	return &material, true
}
