package models

type DeploymentCatalogEntry struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Required bool   `json:"required" yaml:"required"`
	// ItemID pins the entry to a concrete inventory item instead of name matching.
	ItemID string `json:"item_id,omitempty" yaml:"item_id,omitempty"`
}

// DeploymentRequest maps catalog entry ids to requested quantities.
type DeploymentRequest map[string]int

func (r DeploymentRequest) Total() int {
	total := 0
	for _, qty := range r {
		if qty > 0 {
			total += qty
		}
	}
	return total
}

type EntryAvailability struct {
	Entry     DeploymentCatalogEntry `json:"entry"`
	ItemID    string                 `json:"item_id,omitempty"`
	ItemName  string                 `json:"item_name,omitempty"`
	Count     int                    `json:"count"`
	Available bool                   `json:"available"`
}
