package items

type CreateItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Count      *int   `json:"count" binding:"required"`
	LocationID string `json:"location_id" binding:"required"`
}

type UpdateCountRequest struct {
	Count *int `json:"count" binding:"required"`
}

type itemURI struct {
	ID string `uri:"id" binding:"required"`
}
