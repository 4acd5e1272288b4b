package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
)

// Liquor is a catalog entry for one brand/bottling. SizeMl is the sealed bottle
// volume; PourPrices maps a pour size in ml to its selling price. Volumes are
// integer milliliters everywhere, prices are decimals.
type Liquor struct {
	ID          string
	Brand       string
	SizeMl      int
	Barcode     string // unique per liquor
	BottlePrice decimal.Decimal
	PourPrices  map[int]decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the catalog invariants: positive bottle size, non-negative
// prices, and every pour size within the bottle.
func (l *Liquor) Validate() error {
	if l.Brand == "" || l.Barcode == "" {
		return domain.ErrInvalidInput
	}
	if l.SizeMl <= 0 {
		return domain.ErrInvalidInput
	}
	if l.BottlePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	for sizeMl, price := range l.PourPrices {
		if sizeMl <= 0 || sizeMl > l.SizeMl {
			return domain.ErrInvalidInput
		}
		if price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// PourPrice returns the price for a pour size, if the liquor is sold in it.
func (l *Liquor) PourPrice(sizeMl int) (decimal.Decimal, bool) {
	p, ok := l.PourPrices[sizeMl]
	return p, ok
}
