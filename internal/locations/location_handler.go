package locations

import (
	"net/http"

	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"github.com/gin-gonic/gin"
)

type ItemLister interface {
	List() []models.InventoryItem
	FilterByLocation(locationID string) []models.InventoryItem
}

type LocationHandler struct {
	Registry *Registry
	Items    ItemLister
}

func NewLocationHandler(r *Registry, items ItemLister) *LocationHandler {
	return &LocationHandler{Registry: r, Items: items}
}

func (h *LocationHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/locations", h.GetLocations)
	router.GET("/locations/summary", h.GetSummary)
	router.GET("/locations/:id/items", h.GetLocationItems)
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.List())
}

func (h *LocationHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.Summary(h.Items.List()))
}

func (h *LocationHandler) GetLocationItems(c *gin.Context) {
	location, err := h.Registry.Get(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Could not get location items", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location": location,
		"items":    h.Items.FilterByLocation(location.ID),
	})
}
