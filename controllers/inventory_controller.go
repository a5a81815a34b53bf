package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Virus3D/invent/config"
	"github.com/Virus3D/invent/models"
	"github.com/Virus3D/invent/service"
	"github.com/Virus3D/invent/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type inventoryItemInput struct {
	Name              string           `json:"name" validate:"required,max=200"`
	Description       string           `json:"description"`
	InventoryNumber   string           `json:"inventory_number" validate:"max=50"`
	SerialNumber      string           `json:"serial_number" validate:"max=100"`
	Category          string           `json:"category" validate:"required"`
	BalanceType       string           `json:"balance_type" validate:"required"`
	Status            string           `json:"status" validate:"required"`
	Type              string           `json:"type" validate:"required"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	PurchaseDate      string           `json:"purchase_date"`
	CommissioningDate string           `json:"commissioning_date"`
	ResponsiblePerson string           `json:"responsible_person" validate:"max=255"`
	LocationID        *uint            `json:"location_id"`
}

// GET /api/inventory
func ListInventory(c *gin.Context) {
	criteria := service.ItemSearchCriteria{
		Query:             c.Query("q"),
		Category:          models.CategoryID(c.Query("category")),
		Status:            models.ItemStatus(c.Query("status")),
		BalanceType:       models.BalanceType(c.Query("balance_type")),
		HasSerial:         c.Query("has_serial") == "true",
		HasSpecifications: c.Query("has_specs") == "true",
		Sort:              c.DefaultQuery("sort", "name"),
		Direction:         c.DefaultQuery("direction", "asc"),
	}

	switch location := c.Query("location"); location {
	case "":
	case "with_location":
		yes := true
		criteria.HasLocation = &yes
	case "without_location":
		no := false
		criteria.HasLocation = &no
	default:
		if id, err := strconv.ParseUint(location, 10, 64); err == nil {
			locationID := uint(id)
			criteria.LocationID = &locationID
		}
	}

	items, err := service.SearchItems(config.DB, criteria)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to fetch inventory", err)
		return
	}
	utils.Success(c, "inventory items", items)
}

// GET /api/inventory/:id
func GetInventoryItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	utils.Success(c, "inventory item", item)
}

// POST /api/inventory
func CreateInventoryItem(c *gin.Context) {
	// Defaults match a freshly registered asset.
	item := models.InventoryItem{
		Category:       models.CategoryOther,
		BalanceType:    models.BalanceOnBalance,
		Status:         models.StatusNew,
		Type:           models.TypeFixedAsset,
		Specifications: models.SpecMap{},
	}
	saveInventoryItem(c, &item, true)
}

// PUT /api/inventory/:id
func UpdateInventoryItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	saveInventoryItem(c, item, false)
}

// saveInventoryItem is the single save path for create and update. It
// normalizes specifications, collects every validation error, detects
// location/specification/balance transitions, and commits the item together
// with any audit rows in one transaction.
func saveInventoryItem(c *gin.Context, item *models.InventoryItem, isCreate bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var input inventoryItemInput
	if err := json.Unmarshal(body, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	var rawBody map[string]any
	if err := json.Unmarshal(body, &rawBody); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	errs := service.ValidateStruct(input)

	cat, ok := models.CategoryByID(models.CategoryID(input.Category))
	if !ok {
		utils.Error(c, http.StatusNotFound, "unknown category", nil)
		return
	}
	if !models.BalanceType(input.BalanceType).Valid() {
		errs["balance_type"] = "invalid balance type"
	}
	if !models.ItemStatus(input.Status).Valid() {
		errs["status"] = "invalid status"
	}
	if !models.ItemType(input.Type).Valid() {
		errs["type"] = "invalid item type"
	}
	if input.PurchasePrice != nil && input.PurchasePrice.IsNegative() {
		errs["purchase_price"] = "purchase price must not be negative"
	}

	purchaseDate, dateErr := parseDate(input.PurchaseDate)
	if dateErr != nil {
		errs["purchase_date"] = "invalid date, expected YYYY-MM-DD"
	}
	commissioningDate, dateErr := parseDate(input.CommissioningDate)
	if dateErr != nil {
		errs["commissioning_date"] = "invalid date, expected YYYY-MM-DD"
	}

	if input.LocationID != nil {
		var location models.Location
		if err := config.DB.First(&location, *input.LocationID).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "location not found", nil)
			return
		}
	}

	specs := service.NormalizeSpecifications(cat, service.CollectSpecFields(rawBody))
	for field, message := range service.ValidateRequiredSpecs(cat, specs) {
		errs[field] = message
	}

	oldState := service.NewItemState()
	if !isCreate {
		oldState = service.StateOf(item)
	}

	item.Name = input.Name
	item.Description = input.Description
	item.InventoryNumber = input.InventoryNumber
	item.SerialNumber = input.SerialNumber
	item.Category = cat.ID
	item.BalanceType = models.BalanceType(input.BalanceType)
	item.Status = models.ItemStatus(input.Status)
	item.Type = models.ItemType(input.Type)
	item.PurchasePrice = decimal.NullDecimal{}
	if input.PurchasePrice != nil {
		item.PurchasePrice = decimal.NullDecimal{Decimal: *input.PurchasePrice, Valid: true}
	}
	item.PurchaseDate = purchaseDate
	item.CommissioningDate = commissioningDate
	item.ResponsiblePerson = input.ResponsiblePerson
	item.Specifications = specs
	item.LocationID = input.LocationID
	item.Location = nil

	for field, message := range service.ApplyInventoryNumberRule(item) {
		errs[field] = message
	}

	if len(errs) > 0 {
		utils.ValidationFailed(c, errs)
		return
	}

	changes := service.DetectItemChanges(item.ID, oldState, service.StateOf(item), currentActor(c), isCreate)

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if changes.Movement != nil {
			changes.Movement.InventoryItemID = item.ID
			if err := tx.Create(changes.Movement).Error; err != nil {
				return err
			}
		}
		if changes.Balance != nil {
			changes.Balance.InventoryItemID = item.ID
			if err := tx.Create(changes.Balance).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to save inventory item", err)
		return
	}

	if err := config.DB.Preload("Location").First(item, item.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to reload inventory item", err)
		return
	}

	if isCreate {
		utils.Created(c, "inventory item created", item)
	} else {
		utils.Success(c, "inventory item updated", item)
	}
}

// DELETE /api/inventory/:id
func DeleteInventoryItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	if err := config.DB.Select("MovementLogs", "BalanceHistories").Delete(item).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete inventory item", err)
		return
	}
	utils.Success(c, "inventory item deleted", nil)
}

// POST /api/inventory/:id/check
func ToggleItemCheck(c *gin.Context) {
	item, ok := findItem(c)
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

	if err := config.DB.Model(item).Update("checked", input.Checked).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update check mark", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checked": input.Checked})
}

// POST /api/inventory/check/reset
// Bulk clear of the inspection marker; deliberately a raw UPDATE without
// per-item audit rows.
func ResetItemChecks(c *gin.Context) {
	if err := config.DB.Exec("UPDATE inventory_item SET checked = false").Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to reset check marks", err)
		return
	}
	utils.Success(c, "check marks reset", nil)
}

func findItem(c *gin.Context) (*models.InventoryItem, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	var item models.InventoryItem
	if err := config.DB.Preload("Location").First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
		return nil, false
	}
	return &item, true
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
