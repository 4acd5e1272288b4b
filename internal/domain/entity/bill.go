package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItem is the denormalized, human-readable snapshot of one sold line as it
// appears on the receipt. It owns its data by value: later catalog or recipe
// edits never change a historical bill.
type BillItem struct {
	Brand       string          `json:"brand"`
	Kind        string          `json:"kind"` // bottle | pour | cocktail
	LiquorID    string          `json:"liquorId,omitempty"`
	CocktailID  string          `json:"cocktailId,omitempty"`
	Quantity    int             `json:"qty"` // bottles or drink count
	PourSizeMl  int             `json:"pourSizeMl,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Ingredients []Ingredient    `json:"ingredients,omitempty"` // cocktail recipe as of sale time
}

// Bill groups the sale lines of one customer order under a single identifier
// with a computed total. Immutable once created; deletion is a hard remove.
type Bill struct {
	BillID    string
	Items     []BillItem
	Total     decimal.Decimal
	Timestamp time.Time
	Actor     string
}

// ComputeTotal sums the item prices. Kept separate from construction so the
// stored total can be re-derived and checked.
func (b *Bill) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.Price)
	}
	return total
}
