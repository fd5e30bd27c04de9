package items

import (
	"net/http"

	inventorylog "github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/inventory_log"
	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"github.com/gin-gonic/gin"
)

type ItemStore interface {
	Query(filter ItemFilter) []models.InventoryItem
	Get(itemID string) (models.InventoryItem, error)
	AddItem(name string, count int, locationID string) (models.InventoryItem, error)
	SetCount(itemID string, newCount int) (int, error)
	DeleteItem(itemID string) (models.InventoryItem, error)
}

type LocationChecker interface {
	Exists(locationID string) bool
}

type ItemHandler struct {
	Store        ItemStore
	Locations    LocationChecker
	InventoryLog *inventorylog.InventoryLog
}

func NewItemHandler(s ItemStore, l LocationChecker, log *inventorylog.InventoryLog) *ItemHandler {
	return &ItemHandler{
		Store:        s,
		Locations:    l,
		InventoryLog: log,
	}
}

// RegisterRoutes mounts the item endpoints; guards run in front of every mutating route.
func (h *ItemHandler) RegisterRoutes(router gin.IRoutes, guards ...gin.HandlerFunc) {
	router.GET("/items", h.GetItems)
	router.GET("/items/:id", h.GetItem)
	router.POST("/items", withGuards(guards, h.CreateItem)...)
	router.PATCH("/items/:id", withGuards(guards, h.UpdateCount)...)
	router.DELETE("/items/:id", withGuards(guards, h.DeleteItem)...)
}

func (h *ItemHandler) GetItems(c *gin.Context) {
	var filter ItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	c.JSON(http.StatusOK, h.Store.Query(filter))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	var uri itemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
		return
	}

	item, err := h.Store.Get(uri.ID)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to get item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := ValidateNewItem(req.Name, *req.Count, req.LocationID); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid item", "details": err.Error()})
		return
	}
	if h.Locations != nil && !h.Locations.Exists(req.LocationID) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unknown location", "code": "unknown_location"})
		return
	}

	item, err := h.Store.AddItem(req.Name, *req.Count, req.LocationID)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Failed to add item", "details": err.Error()})
		return
	}

	h.InventoryLog.ItemAdded(item)

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) UpdateCount(c *gin.Context) {
	var uri itemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URI parameters", "details": err.Error()})
		return
	}

	var req UpdateCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	previous, err := h.Store.SetCount(uri.ID, *req.Count)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to update count", "details": err.Error()})
		return
	}

	item, err := h.Store.Get(uri.ID)
	if err != nil {
		// deleted between the two calls
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to get item", "details": err.Error()})
		return
	}

	h.InventoryLog.CountUpdated(item, previous)

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	var uri itemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
		return
	}

	removed, err := h.Store.DeleteItem(uri.ID)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Failed to delete item", "details": err.Error()})
		return
	}

	h.InventoryLog.ItemRemoved(removed)

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully", "id": removed.ID})
}

func withGuards(guards []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
