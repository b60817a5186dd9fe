package models

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddLoadingRequest struct {
	// Quantity is the number of pieces loaded on the new day.
	Quantity int64 `json:"quantity"`
}
