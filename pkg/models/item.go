package models

type InventoryItem struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Count    int    `json:"count" yaml:"count"`
	Location string `json:"location_id" yaml:"location"`
}

// Decrement removes Quantity units from a single item as part of a batch.
type Decrement struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}
