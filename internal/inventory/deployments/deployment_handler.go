package deployments

import (
	"net/http"

	inventorylog "github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/inventory_log"
	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"github.com/gin-gonic/gin"
)

type DeploymentHandler struct {
	Resolver     *Resolver
	Sessions     *SessionRegistry
	InventoryLog *inventorylog.InventoryLog
}

func NewDeploymentHandler(r *Resolver, s *SessionRegistry, log *inventorylog.InventoryLog) *DeploymentHandler {
	return &DeploymentHandler{
		Resolver:     r,
		Sessions:     s,
		InventoryLog: log,
	}
}

func (h *DeploymentHandler) RegisterRoutes(router gin.IRoutes, guards ...gin.HandlerFunc) {
	router.GET("/deployments/catalog", h.GetCatalog)
	router.POST("/deployments", withGuards(guards, h.Deploy)...)
	router.POST("/deployments/sessions", withGuards(guards, h.OpenSession)...)
	router.GET("/deployments/sessions/:id", h.GetSession)
	router.PATCH("/deployments/sessions/:id/entries/:entry_id", withGuards(guards, h.AdjustEntry)...)
	router.POST("/deployments/sessions/:id/submit", withGuards(guards, h.SubmitSession)...)
	router.DELETE("/deployments/sessions/:id", withGuards(guards, h.CloseSession)...)
}

func (h *DeploymentHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.Resolver.Availability())
}

func (h *DeploymentHandler) Deploy(c *gin.Context) {
	var req DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	for entryID, qty := range req.Quantities {
		if _, err := h.Resolver.Catalog().Lookup(entryID); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unknown deployment item", "details": err.Error(), "code": "unknown_entry"})
			return
		}
		if qty < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative", "code": "negative_quantity", "property": entryID})
			return
		}
	}

	res, err := h.Resolver.Deploy(models.DeploymentRequest(req.Quantities))
	if err != nil {
		h.respondWithDeployError(c, err)
		return
	}

	h.InventoryLog.ComputerDeployed(deployedLines(res))

	c.JSON(http.StatusCreated, res)
}

func (h *DeploymentHandler) OpenSession(c *gin.Context) {
	session := h.Sessions.Open()

	c.JSON(http.StatusCreated, session.View())
}

func (h *DeploymentHandler) GetSession(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, session.View())
}

func (h *DeploymentHandler) AdjustEntry(c *gin.Context) {
	var uri sessionEntryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URI parameters", "details": err.Error()})
		return
	}

	var req AdjustEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	if (req.Delta == nil) == (req.Quantity == nil) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of delta or quantity"})
		return
	}

	session, err := h.Sessions.Get(uri.ID)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to get deployment session", "details": err.Error()})
		return
	}

	if req.Delta != nil {
		_, err = session.Adjust(uri.EntryID, *req.Delta)
	} else {
		_, err = session.Set(uri.EntryID, *req.Quantity)
	}
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to change quantity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.View())
}

func (h *DeploymentHandler) SubmitSession(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	res, err := session.Submit()
	if err != nil {
		h.respondWithDeployError(c, err)
		return
	}

	h.InventoryLog.ComputerDeployed(deployedLines(res))
	if err := h.Sessions.Close(session.ID); err != nil {
		h.InventoryLog.SessionCloseFailed(session.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"state": StateApplied, "deployment": res})
}

func (h *DeploymentHandler) CloseSession(c *gin.Context) {
	var uri sessionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
		return
	}

	if err := h.Sessions.Close(uri.ID); err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to close deployment session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deployment session closed"})
}

func (h *DeploymentHandler) lookupSession(c *gin.Context) (*Session, bool) {
	var uri sessionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
		return nil, false
	}

	session, err := h.Sessions.Get(uri.ID)
	if err != nil {
		c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to get deployment session", "details": err.Error()})
		return nil, false
	}

	return session, true
}

func (h *DeploymentHandler) respondWithDeployError(c *gin.Context, err error) {
	if stockErr, ok := custom_error.AsInsufficientStock(err); ok {
		h.InventoryLog.DeploymentRejected(stockErr.Items)
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":   "The following items don't have enough stock",
			"reasons": stockErr.Items,
		})
		return
	}

	c.AbortWithStatusJSON(custom_error.StatusFor(err), gin.H{"error": "Unable to deploy computer", "details": err.Error()})
}

func deployedLines(res Resolution) []inventorylog.DeployedLine {
	lines := make([]inventorylog.DeployedLine, 0, len(res.Lines))
	for _, line := range res.Lines {
		lines = append(lines, inventorylog.DeployedLine{
			ItemID:   line.ItemID,
			ItemName: line.ItemName,
			Quantity: line.Quantity,
		})
	}
	return lines
}

func withGuards(guards []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
