package entity

import (
	"time"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
)

// StockRecord is the mutable stock state of one liquor at one location:
// sealed bottles plus the remainder of the single currently-open bottle.
// Invariant: 0 <= OpenMl < bottle size; open volume never reaches a full
// bottle, since it is only ever topped up by cracking a sealed one.
type StockRecord struct {
	ID        string
	LiquorID  string
	Location  domain.Location
	Bottles   int
	OpenMl    int
	UpdatedAt time.Time
}

// TotalMl is the total remaining volume at this location given the bottle size.
func (s StockRecord) TotalMl(sizeMl int) int {
	return s.Bottles*sizeMl + s.OpenMl
}
