package deployments

import (
	"testing"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/items"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/seed"
	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStock struct {
	mock.Mock
}

func (m *MockStock) List() []models.InventoryItem {
	args := m.Called()
	return args.Get(0).([]models.InventoryItem)
}

func (m *MockStock) ApplyBatch(decrements []models.Decrement) error {
	args := m.Called(decrements)
	return args.Error(0)
}

var testCatalog = []models.DeploymentCatalogEntry{
	{ID: "keyboard", Name: "Keyboard", Required: true},
	{ID: "mouse", Name: "Mouse", Required: true},
	{ID: "mousepad", Name: "Mouse Pad"},
	{ID: "usb-hub", Name: "USB Hub"},
}

func newResolver(seedItems ...models.InventoryItem) (*Resolver, *items.Store) {
	store := items.NewStore(seedItems, nil)
	return NewResolver(NewCatalog(testCatalog), store), store
}

func TestDeployDecrementsMatchedItem(t *testing.T) {
	resolver, store := newResolver(models.InventoryItem{ID: "m", Name: "Mouse", Count: 5, Location: "lab1"})

	res, err := resolver.Deploy(models.DeploymentRequest{"mouse": 3})
	require.NoError(t, err)

	assert.True(t, res.Accepted())
	assert.Equal(t, []models.Decrement{{ItemID: "m", Quantity: 3}}, res.Decrements())
	item, _ := store.Get("m")
	assert.Equal(t, 2, item.Count)
}

func TestResolveThenApplyBatch(t *testing.T) {
	resolver, store := newResolver(models.InventoryItem{ID: "m", Name: "Mouse", Count: 5, Location: "lab1"})

	res := resolver.Resolve(models.DeploymentRequest{"mouse": 3})
	require.True(t, res.Accepted())
	require.NoError(t, store.ApplyBatch(res.Decrements()))

	item, _ := store.Get("m")
	assert.Equal(t, 2, item.Count)
}

func TestResolveInsufficientStock(t *testing.T) {
	resolver, store := newResolver(models.InventoryItem{ID: "k", Name: "Keyboard", Count: 1, Location: "lab1"})
	before := store.List()

	res := resolver.Resolve(models.DeploymentRequest{"keyboard": 2})

	assert.False(t, res.Accepted())
	assert.Equal(t, []string{"Keyboard"}, res.Insufficient)
	assert.Empty(t, res.Decrements())
	assert.Equal(t, before, store.List())

	_, err := resolver.Deploy(models.DeploymentRequest{"keyboard": 2})
	stockErr, ok := custom_error.AsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Keyboard"}, stockErr.Items)
	assert.Equal(t, before, store.List())
}

func TestResolveCollectsEveryShortEntry(t *testing.T) {
	resolver, store := newResolver(
		models.InventoryItem{ID: "k", Name: "Keyboard", Count: 1, Location: "lab1"},
		models.InventoryItem{ID: "m", Name: "Wireless Mouse", Count: 10, Location: "lab1"},
	)
	before := store.List()

	res, err := resolver.Deploy(models.DeploymentRequest{"keyboard": 2, "mouse": 1, "mousepad": 1})

	assert.Error(t, err)
	assert.Equal(t, []string{"Keyboard", "Mouse Pad"}, res.Insufficient)
	assert.Equal(t, before, store.List())
}

func TestResolveAggregatesEntriesSharingAnItem(t *testing.T) {
	resolver, store := newResolver(models.InventoryItem{ID: "kb", Name: "USB Keyboard", Count: 3, Location: "lab1"})

	res := resolver.Resolve(models.DeploymentRequest{"keyboard": 2, "usb-hub": 2})

	assert.Equal(t, []string{"USB Hub"}, res.Insufficient)
	item, _ := store.Get("kb")
	assert.Equal(t, 3, item.Count)

	res, err := resolver.Deploy(models.DeploymentRequest{"keyboard": 2, "usb-hub": 1})
	require.NoError(t, err)
	assert.Len(t, res.Lines, 2)
	item, _ = store.Get("kb")
	assert.Equal(t, 0, item.Count)
}

func TestResolveEmptyRequest(t *testing.T) {
	resolver, store := newResolver(models.InventoryItem{ID: "m", Name: "Mouse", Count: 5, Location: "lab1"})

	res := resolver.Resolve(models.DeploymentRequest{"mouse": 0})
	assert.True(t, res.Accepted())
	assert.Empty(t, res.Lines)
	assert.Equal(t, 0, res.Total())

	_, err := resolver.Deploy(models.DeploymentRequest{})
	assert.True(t, custom_error.IsValidation(err))
	item, _ := store.Get("m")
	assert.Equal(t, 5, item.Count)
}

func TestResolveIgnoresUnknownEntries(t *testing.T) {
	resolver, _ := newResolver(models.InventoryItem{ID: "m", Name: "Mouse", Count: 5, Location: "lab1"})

	res := resolver.Resolve(models.DeploymentRequest{"mouse": 1, "scanner": 4})

	assert.True(t, res.Accepted())
	assert.Equal(t, 1, res.Total())
}

func TestClamp(t *testing.T) {
	resolver, _ := newResolver(models.InventoryItem{ID: "m", Name: "Wireless Mouse", Count: 5, Location: "lab1"})

	tests := []struct {
		name     string
		entryID  string
		qty      int
		expected int
	}{
		{"within stock", "mouse", 3, 3},
		{"above stock", "mouse", 9, 5},
		{"negative", "mouse", -2, 0},
		{"unmatched entry", "mousepad", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Clamp(tt.entryID, tt.qty)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := resolver.Clamp("scanner", 1)
	assert.True(t, custom_error.IsNotFound(err))
}

func TestAvailabilityWithSeedData(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)
	resolver := NewResolver(NewCatalog(data.DeploymentCatalog), items.NewStore(data.Items, nil))

	availability := resolver.Availability()

	require.Len(t, availability, 12)
	assert.Equal(t, "keyboard", availability[0].Entry.ID)
	assert.Equal(t, 12, availability[0].Count)
	assert.True(t, availability[0].Available)

	assert.Equal(t, "mousepad", availability[2].Entry.ID)
	assert.False(t, availability[2].Available)
	assert.Equal(t, 0, availability[2].Count)
	assert.Empty(t, availability[2].ItemID)
}

func TestAvailabilityOutOfStock(t *testing.T) {
	resolver, _ := newResolver(models.InventoryItem{ID: "m", Name: "Mouse", Count: 0, Location: "lab1"})

	availability := resolver.Availability()

	assert.Equal(t, "m", availability[1].ItemID)
	assert.False(t, availability[1].Available)
}

func TestDeployRejectsRequestWithOnlyUnknownEntries(t *testing.T) {
	resolver, store := newResolver(models.InventoryItem{ID: "m", Name: "Wireless Mouse", Count: 5, Location: "lab1"})

	res, err := resolver.Deploy(models.DeploymentRequest{"bogus": 3})

	assert.True(t, custom_error.IsValidation(err))
	assert.Empty(t, res.Lines)
	item, _ := store.Get("m")
	assert.Equal(t, 5, item.Count)
}

func TestDeployRetriesWhenStockMovesBeforeApply(t *testing.T) {
	stock := new(MockStock)
	stock.On("List").Return([]models.InventoryItem{{ID: "m", Name: "Wireless Mouse", Count: 5, Location: "lab1"}})
	batch := []models.Decrement{{ItemID: "m", Quantity: 2}}
	stock.On("ApplyBatch", batch).Return(custom_error.NewInsufficientStockError([]string{"Wireless Mouse"})).Once()
	stock.On("ApplyBatch", batch).Return(nil).Once()
	resolver := NewResolver(NewCatalog(testCatalog), stock)

	res, err := resolver.Deploy(models.DeploymentRequest{"mouse": 2})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total())
	stock.AssertNumberOfCalls(t, "ApplyBatch", 2)
}

func TestDeployReportsCatalogNamesWhenRetryAlsoLoses(t *testing.T) {
	stock := new(MockStock)
	stock.On("List").Return([]models.InventoryItem{{ID: "m", Name: "Wireless Mouse", Count: 5, Location: "lab1"}})
	stock.On("ApplyBatch", mock.Anything).Return(custom_error.NewInsufficientStockError([]string{"Wireless Mouse"}))
	resolver := NewResolver(NewCatalog(testCatalog), stock)

	_, err := resolver.Deploy(models.DeploymentRequest{"mouse": 2})

	stockErr, ok := custom_error.AsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Mouse"}, stockErr.Items)
	stock.AssertNumberOfCalls(t, "ApplyBatch", 2)
}

func TestDeployReportsRejectionWhenRetryNoLongerResolves(t *testing.T) {
	stock := new(MockStock)
	stock.On("List").Return([]models.InventoryItem{{ID: "m", Name: "Wireless Mouse", Count: 5, Location: "lab1"}}).Once()
	stock.On("List").Return([]models.InventoryItem{{ID: "m", Name: "Wireless Mouse", Count: 1, Location: "lab1"}})
	stock.On("ApplyBatch", mock.Anything).Return(custom_error.NewInsufficientStockError([]string{"Wireless Mouse"})).Once()
	resolver := NewResolver(NewCatalog(testCatalog), stock)

	res, err := resolver.Deploy(models.DeploymentRequest{"mouse": 2})

	stockErr, ok := custom_error.AsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Mouse"}, stockErr.Items)
	assert.Equal(t, []string{"Mouse"}, res.Insufficient)
	stock.AssertNumberOfCalls(t, "ApplyBatch", 1)
}
