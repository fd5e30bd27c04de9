package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the body served by /health.
type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
	Items       int       `json:"items"`
}

// ItemCounter reports how many items the inventory currently holds.
type ItemCounter interface {
	Len() int
}

type Health struct {
	mu        sync.RWMutex
	status    string
	version   string
	startTime time.Time
	items     ItemCounter
}

func NewHealth(version string, items ItemCounter) *Health {
	return &Health{
		status:    "ok",
		version:   version,
		startTime: time.Now(),
		items:     items,
	}
}

// UpdateHealthStatus changes the reported status, e.g. while shutting down.
func (h *Health) UpdateHealthStatus(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.status = status
}

func (h *Health) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := HealthStatus{
		Status:      h.status,
		LastChecked: time.Now(),
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Version:     h.version,
	}
	if h.items != nil {
		status.Items = h.items.Len()
	}
	return status
}

func (h *Health) HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := h.Status()
		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
