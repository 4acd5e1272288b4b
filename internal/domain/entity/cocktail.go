package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
)

// Ingredient is one pour inside a cocktail recipe. Brand is denormalized so
// bills can freeze the recipe as sold even if the catalog changes later.
type Ingredient struct {
	LiquorID string `json:"liquorId"`
	Brand    string `json:"brand"`
	VolumeMl int    `json:"volumeMl"`
}

// Cocktail is a fixed-price mixed drink composed of pours from one or more
// liquors.
type Cocktail struct {
	ID          string
	Name        string
	Barcode     string
	Price       decimal.Decimal
	Ingredients []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks recipe invariants: a name, a non-negative price and at least
// one ingredient with a positive volume.
func (c *Cocktail) Validate() error {
	if c.Name == "" {
		return domain.ErrInvalidInput
	}
	if c.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if len(c.Ingredients) == 0 {
		return domain.ErrInvalidInput
	}
	for _, ing := range c.Ingredients {
		if ing.LiquorID == "" || ing.VolumeMl <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
