package locations

import (
	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"
)

// Registry holds the fixed set of physical locations seeded at startup.
type Registry struct {
	locations []models.Location
	byID      map[string]int
}

func NewRegistry(locations []models.Location) *Registry {
	r := &Registry{
		locations: append([]models.Location(nil), locations...),
		byID:      make(map[string]int, len(locations)),
	}
	for i, loc := range r.locations {
		r.byID[loc.ID] = i
	}
	return r
}

func (r *Registry) List() []models.Location {
	return append([]models.Location{}, r.locations...)
}

func (r *Registry) Get(locationID string) (models.Location, error) {
	idx, ok := r.byID[locationID]
	if !ok {
		return models.Location{}, custom_error.NewNotFoundError("location", locationID)
	}
	return r.locations[idx], nil
}

func (r *Registry) Exists(locationID string) bool {
	_, ok := r.byID[locationID]
	return ok
}

// Summary totals items per location in registry order. Items pointing at an
// unknown location are not counted anywhere.
func (r *Registry) Summary(items []models.InventoryItem) []models.LocationSummary {
	summaries := make([]models.LocationSummary, len(r.locations))
	for i, loc := range r.locations {
		summaries[i].Location = loc
	}

	for _, item := range items {
		idx, ok := r.byID[item.Location]
		if !ok {
			continue
		}
		summaries[idx].ItemCount++
		summaries[idx].TotalCount += item.Count
	}

	return summaries
}
