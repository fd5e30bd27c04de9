package deployments

import (
	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"
)

// Catalog is the fixed checklist of components a computer deployment may consume.
type Catalog struct {
	entries []models.DeploymentCatalogEntry
	byID    map[string]int
}

func NewCatalog(entries []models.DeploymentCatalogEntry) *Catalog {
	c := &Catalog{
		entries: append([]models.DeploymentCatalogEntry(nil), entries...),
		byID:    make(map[string]int, len(entries)),
	}
	for i, entry := range c.entries {
		c.byID[entry.ID] = i
	}
	return c
}

func (c *Catalog) Entries() []models.DeploymentCatalogEntry {
	return append([]models.DeploymentCatalogEntry{}, c.entries...)
}

func (c *Catalog) Lookup(entryID string) (models.DeploymentCatalogEntry, error) {
	idx, ok := c.byID[entryID]
	if !ok {
		return models.DeploymentCatalogEntry{}, custom_error.NewNotFoundError("deployment catalog entry", entryID)
	}
	return c.entries[idx], nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
