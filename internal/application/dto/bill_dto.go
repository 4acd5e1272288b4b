package dto

import "github.com/shopspring/decimal"

// BillItemResponse one frozen line-item snapshot on a bill.
type BillItemResponse struct {
	Brand       string               `json:"brand"`
	Kind        string               `json:"kind"`
	LiquorID    string               `json:"liquorId,omitempty"`
	CocktailID  string               `json:"cocktailId,omitempty"`
	Quantity    int                  `json:"qty"`
	PourSizeMl  int                  `json:"pourSizeMl,omitempty"`
	Price       decimal.Decimal      `json:"price"`
	Ingredients []IngredientResponse `json:"ingredients,omitempty"`
}

// BillResponse one bill with its items and total.
type BillResponse struct {
	BillID    string             `json:"billId"`
	Items     []BillItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Timestamp string             `json:"timestamp"`
	Actor     string             `json:"actor,omitempty"`
}
