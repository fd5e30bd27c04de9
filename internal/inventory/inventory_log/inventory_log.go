package inventorylog

import (
	"fmt"
	"strings"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"go.uber.org/zap"
)

// DeployedLine is one item consumed by a computer deployment.
type DeployedLine struct {
	ItemID   string
	ItemName string
	Quantity int
}

// InventoryLog records accepted inventory mutations as structured log events.
type InventoryLog struct {
	logger *zap.Logger
}

func NewInventoryLog(logger *zap.Logger) *InventoryLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryLog{logger: logger.Named("inventory")}
}

func (l *InventoryLog) ItemAdded(item models.InventoryItem) {
	l.logger.Info(
		fmt.Sprintf("Added %q to inventory", item.Name),
		zap.String("action", "create"),
		zap.String("item_id", item.ID),
		zap.Int("count", item.Count),
		zap.String("location_id", item.Location),
	)
}

func (l *InventoryLog) CountUpdated(item models.InventoryItem, previous int) {
	l.logger.Info(
		fmt.Sprintf("Updated count of %q", item.Name),
		zap.String("action", "update"),
		zap.String("item_id", item.ID),
		zap.Int("previous_count", previous),
		zap.Int("count", item.Count),
	)
}

func (l *InventoryLog) ItemRemoved(item models.InventoryItem) {
	l.logger.Info(
		fmt.Sprintf("Removed %q from inventory", item.Name),
		zap.String("action", "delete"),
		zap.String("item_id", item.ID),
	)
}

func (l *InventoryLog) ComputerDeployed(lines []DeployedLine) {
	total := 0
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		total += line.Quantity
		parts = append(parts, fmt.Sprintf("%s (%d)", line.ItemName, line.Quantity))
	}

	l.logger.Info(
		fmt.Sprintf("Computer deployed with %d items", total),
		zap.String("action", "deploy"),
		zap.String("description", strings.Join(parts, ", ")),
		zap.Int("lines", len(lines)),
	)
}

func (l *InventoryLog) DeploymentRejected(insufficient []string) {
	l.logger.Warn(
		"Deployment rejected",
		zap.String("action", "deploy"),
		zap.Strings("insufficient", insufficient),
	)
}

// SessionCloseFailed records a deployment that was applied but whose session
// could not be discarded afterwards.
func (l *InventoryLog) SessionCloseFailed(sessionID string, err error) {
	l.logger.Warn(
		"Deployment session not closed after deploy",
		zap.String("action", "deploy"),
		zap.String("session_id", sessionID),
		zap.Error(err),
	)
}
