package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
)

// Sale line kinds. A bottle line counts sealed bottles, a pour line counts
// milliliters, a cocktail line counts the milliliters one ingredient
// contributed (one line per ingredient, so the ledger replays without the
// recipe).
const (
	SaleKindBottle   = "bottle"
	SaleKindPour     = "pour"
	SaleKindCocktail = "cocktail"
)

// SaleLine is one immutable entry in the append-only sale ledger. Quantity is
// bottles for bottle lines and ml for pour/cocktail lines. UnitPrice snapshots
// the price charged at sale time; for cocktail lines the price is carried on
// the bill and the line price is zero except on the first ingredient.
type SaleLine struct {
	ID         string
	BillID     string
	LiquorID   string
	CocktailID string // set only on cocktail ingredient lines
	Location   domain.Location
	Kind       string
	Quantity   int
	PourSizeMl int // pour lines: the size sold, Quantity = PourSizeMl * count
	DrinkCount int // cocktail lines: how many drinks the ml covers
	UnitPrice  decimal.Decimal
	Timestamp  time.Time
	Actor      string
}
