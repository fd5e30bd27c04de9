// Package seed provides the startup data set: locations, initial inventory
// and the deployment catalog. The embedded copy is used unless an override
// file is configured.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Locations         []models.Location               `yaml:"locations"`
	Items             []models.InventoryItem          `yaml:"items"`
	DeploymentCatalog []models.DeploymentCatalogEntry `yaml:"deployment_catalog"`
}

func Default() (*Data, error) {
	return Parse(defaultSeed)
}

func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

func (d *Data) Validate() error {
	if len(d.Locations) == 0 {
		return fmt.Errorf("seed data defines no locations")
	}

	locations := make(map[string]bool, len(d.Locations))
	for _, loc := range d.Locations {
		if loc.ID == "" {
			return fmt.Errorf("location with empty id")
		}
		if locations[loc.ID] {
			return fmt.Errorf("duplicate location id %q", loc.ID)
		}
		locations[loc.ID] = true
	}

	items := make(map[string]bool, len(d.Items))
	for _, item := range d.Items {
		switch {
		case item.ID == "":
			return fmt.Errorf("item %q has empty id", item.Name)
		case items[item.ID]:
			return fmt.Errorf("duplicate item id %q", item.ID)
		case strings.TrimSpace(item.Name) == "":
			return fmt.Errorf("item %q has empty name", item.ID)
		case item.Count < 0:
			return fmt.Errorf("item %q has negative count %d", item.ID, item.Count)
		case !locations[item.Location]:
			return fmt.Errorf("item %q references unknown location %q", item.ID, item.Location)
		}
		items[item.ID] = true
	}

	entries := make(map[string]bool, len(d.DeploymentCatalog))
	for _, entry := range d.DeploymentCatalog {
		if entry.ID == "" || strings.TrimSpace(entry.Name) == "" {
			return fmt.Errorf("deployment catalog entry needs both id and name (got %q/%q)", entry.ID, entry.Name)
		}
		if entries[entry.ID] {
			return fmt.Errorf("duplicate deployment catalog id %q", entry.ID)
		}
		if entry.ItemID != "" && !items[entry.ItemID] {
			return fmt.Errorf("deployment catalog entry %q pinned to unknown item %q", entry.ID, entry.ItemID)
		}
		entries[entry.ID] = true
	}

	return nil
}
