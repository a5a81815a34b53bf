package controllers

import (
	"net/http"

	"github.com/Virus3D/invent/models"
	"github.com/Virus3D/invent/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/categories
func ListCategories(c *gin.Context) {
	categories := models.Categories()

	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{
			"value":              cat.ID,
			"label":              cat.Label,
			"icon":               cat.Icon,
			"color":              cat.Color,
			"has_specifications": cat.HasSpecifications(),
		})
	}
	utils.Success(c, "categories", out)
}

// GET /api/categories/:category/specs
func GetCategorySpecs(c *gin.Context) {
	cat, ok := models.CategoryByID(models.CategoryID(c.Param("category")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":           cat.ID,
		"label":              cat.Label,
		"has_specifications": cat.HasSpecifications(),
		"required_specs":     cat.RequiredSpecs,
		"allowed_specs":      cat.AllowedSpecs,
		"spec_labels":        cat.SpecLabels(),
	})
}
