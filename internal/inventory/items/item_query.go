package items

import (
	"strings"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"
)

// ItemFilter narrows a listing by location and then by name.
type ItemFilter struct {
	LocationID string `form:"location_id"`
	Search     string `form:"q"`
}

func (f ItemFilter) Apply(items []models.InventoryItem) []models.InventoryItem {
	return SearchByName(FilterByLocation(items, f.LocationID), f.Search)
}

func FilterByLocation(items []models.InventoryItem, locationID string) []models.InventoryItem {
	if locationID == "" {
		return items
	}

	filtered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Location == locationID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func SearchByName(items []models.InventoryItem, query string) []models.InventoryItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	filtered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
