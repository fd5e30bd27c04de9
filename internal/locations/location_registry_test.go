package locations

import (
	"testing"

	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocations = []models.Location{
	{ID: "helpdesk", Name: "Help Desk"},
	{ID: "storage", Name: "Storage Room"},
	{ID: "lab1", Name: "Computer Lab 1"},
}

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry(testLocations)

	loc, err := registry.Get("lab1")
	require.NoError(t, err)
	assert.Equal(t, "Computer Lab 1", loc.Name)

	_, err = registry.Get("roof")
	assert.True(t, custom_error.IsNotFound(err))

	assert.True(t, registry.Exists("storage"))
	assert.False(t, registry.Exists(""))
}

func TestRegistryListIsCopy(t *testing.T) {
	registry := NewRegistry(testLocations)

	list := registry.List()
	list[0].Name = "changed"

	assert.Equal(t, "Help Desk", registry.List()[0].Name)
}

func TestSummary(t *testing.T) {
	registry := NewRegistry(testLocations)
	items := []models.InventoryItem{
		{ID: "1", Name: "Wireless Mouse", Count: 15, Location: "helpdesk"},
		{ID: "2", Name: "USB Keyboard", Count: 12, Location: "helpdesk"},
		{ID: "6", Name: "Dell Monitor", Count: 20, Location: "storage"},
		{ID: "x", Name: "Lost Cable", Count: 99, Location: "nowhere"},
	}

	summary := registry.Summary(items)

	require.Len(t, summary, 3)
	assert.Equal(t, models.LocationSummary{Location: testLocations[0], ItemCount: 2, TotalCount: 27}, summary[0])
	assert.Equal(t, models.LocationSummary{Location: testLocations[1], ItemCount: 1, TotalCount: 20}, summary[1])
	assert.Equal(t, models.LocationSummary{Location: testLocations[2]}, summary[2])
}
