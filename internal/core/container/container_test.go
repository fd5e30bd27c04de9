package container

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		AppHost:           ":0",
		AppVersion:        "test",
		LogLevel:          "info",
		GinMode:           "test",
		RateLimitRequests: 10,
		RateLimitWindow:   time.Minute,
		ShutdownTimeout:   time.Second,
		SessionTTL:        time.Minute,
	}
}

func TestNewAppContainerWithEmbeddedSeed(t *testing.T) {
	c, err := NewAppContainer(testConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 23, c.Store.Len())
	assert.Len(t, c.Locations.List(), 5)
	assert.Equal(t, 12, c.Resolver.Catalog().Len())
	assert.Equal(t, 23, c.Health.Status().Items)
	assert.Equal(t, "test", c.Health.Status().Version)
}

func TestNewAppContainerWithSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	raw := []byte(`locations:
  - { id: lab1, name: Computer Lab 1 }
items:
  - { id: "1", name: Wireless Mouse, count: 3, location: lab1 }
deployment_catalog:
  - { id: mouse, name: Mouse, required: true }
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg := testConfig()
	cfg.SeedFile = path
	c, err := NewAppContainer(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 1, c.Store.Len())
	assert.Equal(t, 1, c.Resolver.Catalog().Len())
}

func TestNewAppContainerMissingSeedFile(t *testing.T) {
	cfg := testConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewAppContainer(cfg, zap.NewNop())

	assert.Error(t, err)
}
