package dto

import "github.com/shopspring/decimal"

// OrderLine is one requested line of an order: a bottle sale, a pour of a
// given size, or a cocktail. Quantity is the unit count (bottles, pours or
// drinks); the stock cost in ml is derived server-side.
type OrderLine struct {
	Kind       string `json:"kind"` // bottle | pour | cocktail
	LiquorID   string `json:"liquorId,omitempty"`
	CocktailID string `json:"cocktailId,omitempty"`
	PourSizeMl int    `json:"pourSizeMl,omitempty"`
	Quantity   int    `json:"quantity"`
}

// SellBottleRequest immediate sale of sealed bottles.
type SellBottleRequest struct {
	LiquorID string `json:"liquorId"`
	Location int    `json:"location"`
	Quantity int    `json:"quantity"`
}

// SellPourRequest immediate sale of one or more pours of a priced size.
type SellPourRequest struct {
	LiquorID   string `json:"liquorId"`
	Location   int    `json:"location"`
	PourSizeMl int    `json:"pourSizeMl"`
	Quantity   int    `json:"quantity"`
}

// SellCocktailRequest immediate sale of one or more cocktails.
type SellCocktailRequest struct {
	CocktailID string `json:"cocktailId"`
	Location   int    `json:"location"`
	Quantity   int    `json:"quantity"`
}

// SaleLineResponse one committed ledger entry.
type SaleLineResponse struct {
	ID         string          `json:"id"`
	BillID     string          `json:"billId"`
	LiquorID   string          `json:"liquorId,omitempty"`
	CocktailID string          `json:"cocktailId,omitempty"`
	Location   int             `json:"location"`
	Kind       string          `json:"kind"`
	Quantity   int             `json:"quantity"`
	PourSizeMl int             `json:"pourSizeMl,omitempty"`
	DrinkCount int             `json:"drinkCount,omitempty"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Timestamp  string          `json:"timestamp"`
	Actor      string          `json:"actor,omitempty"`
}

// PreviewRequest asks, for an in-progress order, how many more units of each
// candidate line still fit after all staged lines are accounted for.
type PreviewRequest struct {
	Location   int         `json:"location"`
	Staged     []OrderLine `json:"staged"`
	Candidates []OrderLine `json:"candidates"`
}

// PreviewCandidateResponse availability verdict for one candidate line.
type PreviewCandidateResponse struct {
	Line               OrderLine `json:"line"`
	MaxAdditionalUnits int       `json:"maxAdditionalUnits"`
}

// PreviewResponse speculative availability for the staged order.
type PreviewResponse struct {
	Candidates []PreviewCandidateResponse `json:"candidates"`
}

// CommitBillRequest commits a multi-line order atomically under one bill.
type CommitBillRequest struct {
	Location int         `json:"location"`
	Lines    []OrderLine `json:"lines"`
}
