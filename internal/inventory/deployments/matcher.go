package deployments

import (
	"strings"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"
)

// MatchItem resolves a catalog entry to a concrete inventory item.
//
// A pinned entry only matches the item with that id. Otherwise the first item
// whose name contains the entry name wins; failing that, the first item whose
// leading word appears inside the entry name. Both comparisons ignore case and
// follow the order of items.
func MatchItem(entry models.DeploymentCatalogEntry, items []models.InventoryItem) (models.InventoryItem, bool) {
	if entry.ItemID != "" {
		for _, item := range items {
			if item.ID == entry.ItemID {
				return item, true
			}
		}
		return models.InventoryItem{}, false
	}

	wanted := strings.ToLower(strings.TrimSpace(entry.Name))
	if wanted == "" {
		return models.InventoryItem{}, false
	}

	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), wanted) {
			return item, true
		}
	}

	for _, item := range items {
		words := strings.Fields(strings.ToLower(item.Name))
		if len(words) > 0 && strings.Contains(wanted, words[0]) {
			return item, true
		}
	}

	return models.InventoryItem{}, false
}
