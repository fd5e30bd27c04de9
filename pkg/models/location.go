package models

type Location struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type LocationSummary struct {
	Location   Location `json:"location"`
	ItemCount  int      `json:"item_count"`
	TotalCount int      `json:"total_count"`
}
