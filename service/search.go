package service

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Virus3D/invent/models"
)

// ItemSearchCriteria collects every filter of the inventory search screen.
// Zero values mean "no filter".
type ItemSearchCriteria struct {
	Query             string
	Category          models.CategoryID
	LocationID        *uint
	HasLocation       *bool
	HasSerial         bool
	HasSpecifications bool
	Status            models.ItemStatus
	BalanceType       models.BalanceType
	Sort              string
	Direction         string
}

// itemSortColumns whitelists sortable fields against their columns. Both
// snake_case and the camelCase aliases of the old API are accepted.
var itemSortColumns = map[string]string{
	"name":             "name",
	"inventory_number": "inventory_number",
	"inventoryNumber":  "inventory_number",
	"created_at":       "created_at",
	"createdAt":        "created_at",
	"category":         "category",
}

// SearchItems runs the filtered inventory search. Default order is by name;
// an explicit whitelisted sort overrides it.
func SearchItems(db *gorm.DB, criteria ItemSearchCriteria) ([]models.InventoryItem, error) {
	query := db.Model(&models.InventoryItem{}).Preload("Location")

	if criteria.Query != "" {
		like := "%" + criteria.Query + "%"
		query = query.Where(
			"name ILIKE ? OR inventory_number ILIKE ? OR serial_number ILIKE ? OR description ILIKE ?",
			like, like, like, like,
		)
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.LocationID != nil {
		query = query.Where("location_id = ?", *criteria.LocationID)
	}
	if criteria.HasLocation != nil {
		if *criteria.HasLocation {
			query = query.Where("location_id IS NOT NULL")
		} else {
			query = query.Where("location_id IS NULL")
		}
	}
	if criteria.HasSerial {
		query = query.Where("serial_number <> ''")
	}
	if criteria.HasSpecifications {
		query = query.Where("specifications IS NOT NULL AND specifications <> '{}'")
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.BalanceType != "" {
		query = query.Where("balance_type = ?", criteria.BalanceType)
	}

	query = query.Order(orderClause(criteria.Sort, criteria.Direction))

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func orderClause(sort, direction string) string {
	column, ok := itemSortColumns[sort]
	if !ok {
		return "name ASC"
	}
	if strings.EqualFold(direction, "desc") {
		return column + " DESC"
	}
	return column + " ASC"
}
