package deployments

type DeployRequest struct {
	Quantities map[string]int `json:"quantities" binding:"required"`
}

// AdjustEntryRequest either moves the quantity by Delta or sets it to Quantity.
type AdjustEntryRequest struct {
	Delta    *int `json:"delta"`
	Quantity *int `json:"quantity"`
}

type sessionURI struct {
	ID string `uri:"id" binding:"required"`
}

type sessionEntryURI struct {
	ID      string `uri:"id" binding:"required"`
	EntryID string `uri:"entry_id" binding:"required"`
}
