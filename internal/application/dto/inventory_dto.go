package dto

// AddStockRequest books sealed bottles into a location (first addition creates
// the record with zero open volume).
type AddStockRequest struct {
	LiquorID string `json:"liquorId"`
	Location int    `json:"location"`
	Bottles  int    `json:"bottles"`
}

// UpdateStockRequest administrative direct edit of one stock record.
type UpdateStockRequest struct {
	Bottles int `json:"bottles"`
	OpenMl  int `json:"openMl"`
}

// StockItemResponse one stock record joined with its catalog entry.
type StockItemResponse struct {
	LiquorID string `json:"liquorId"`
	Brand    string `json:"brand"`
	SizeMl   int    `json:"sizeMl"`
	Location int    `json:"location"`
	Bottles  int    `json:"bottles"`
	OpenMl   int    `json:"openMl"`
}

// TransferRequest moves whole sealed bottles from the warehouse to the bar.
type TransferRequest struct {
	LiquorID string `json:"liquorId"`
	Bottles  int    `json:"bottles"`
}

// TransferResponse a committed transfer log entry.
type TransferResponse struct {
	ID        string `json:"id"`
	LiquorID  string `json:"liquorId"`
	Brand     string `json:"brand,omitempty"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Bottles   int    `json:"bottles"`
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor,omitempty"`
}
