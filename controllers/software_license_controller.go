package controllers

import (
	"net/http"
	"strconv"

	"github.com/Virus3D/invent/config"
	"github.com/Virus3D/invent/models"
	"github.com/Virus3D/invent/service"
	"github.com/Virus3D/invent/utils"

	"github.com/gin-gonic/gin"
)

type softwareLicenseInput struct {
	Name       string `json:"name" validate:"required,max=200"`
	LicenseKey string `json:"license_key" validate:"max=255"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date"`
	Valid      *bool  `json:"valid"`
	LocationID *uint  `json:"location_id"`
}

// GET /api/licenses
func ListSoftwareLicenses(c *gin.Context) {
	query := config.DB.Preload("Location").Order("name ASC")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR license_key ILIKE ?", like, like)
	}
	if valid := c.Query("valid"); valid != "" {
		query = query.Where("valid = ?", valid == "true")
	}

	var licenses []models.SoftwareLicense
	if err := query.Find(&licenses).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch licenses", err)
		return
	}
	utils.Success(c, "software licenses", licenses)
}

// GET /api/licenses/:id
func GetSoftwareLicense(c *gin.Context) {
	license, ok := findLicense(c)
	if !ok {
		return
	}
	utils.Success(c, "software license", license)
}

// POST /api/licenses
func CreateSoftwareLicense(c *gin.Context) {
	license := models.SoftwareLicense{Valid: true}
	if !applyLicenseInput(c, &license) {
		return
	}
	if err := config.DB.Create(&license).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to create license", err)
		return
	}
	utils.Created(c, "software license created", license)
}

// PUT /api/licenses/:id
func UpdateSoftwareLicense(c *gin.Context) {
	license, ok := findLicense(c)
	if !ok {
		return
	}
	if !applyLicenseInput(c, license) {
		return
	}
	if err := config.DB.Save(license).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update license", err)
		return
	}
	utils.Success(c, "software license updated", license)
}

// DELETE /api/licenses/:id
func DeleteSoftwareLicense(c *gin.Context) {
	license, ok := findLicense(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(license).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete license", err)
		return
	}
	utils.Success(c, "software license deleted", nil)
}

func applyLicenseInput(c *gin.Context, license *models.SoftwareLicense) bool {
	var input softwareLicenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return false
	}

	errs := service.ValidateStruct(input)

	startDate, dateErr := parseDate(input.StartDate)
	if dateErr != nil {
		errs["start_date"] = "invalid date, expected YYYY-MM-DD"
	}
	endDate, dateErr := parseDate(input.EndDate)
	if dateErr != nil {
		errs["end_date"] = "invalid date, expected YYYY-MM-DD"
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		errs["end_date"] = "end date must not precede start date"
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

	license.Name = input.Name
	license.LicenseKey = input.LicenseKey
	license.StartDate = *startDate
	license.EndDate = endDate
	if input.Valid != nil {
		license.Valid = *input.Valid
	}
	license.LocationID = input.LocationID
	license.Location = nil
	return true
}

func findLicense(c *gin.Context) (*models.SoftwareLicense, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	var license models.SoftwareLicense
	if err := config.DB.Preload("Location").First(&license, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "software license not found"})
		return nil, false
	}
	return &license, true
}
