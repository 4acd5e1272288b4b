package stock

import (
	"errors"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// Demand is the stock cost of one staged (uncommitted) order line against a
// single liquor: whole bottles, poured volume, or both. Cocktail lines expand
// to one Demand per ingredient before projection.
type Demand struct {
	LiquorID string
	Bottles  int
	VolumeMl int
}

// Project applies all staged demands to a copy of the base records and returns
// the would-be state. It is a full recomputation from the authoritative records
// every time the staged order changes; nothing is patched incrementally, so the
// shadow can never drift from the real stock. Base is never mutated.
func Project(base map[string]entity.StockRecord, sizes map[string]int, staged []Demand) (map[string]entity.StockRecord, error) {
	projected := make(map[string]entity.StockRecord, len(base))
	for id, rec := range base {
		projected[id] = rec
	}
	for _, d := range staged {
		rec, ok := projected[d.LiquorID]
		if !ok {
			rec = entity.StockRecord{LiquorID: d.LiquorID}
		}
		size := sizes[d.LiquorID]
		var err error
		if d.Bottles > 0 {
			if rec, err = ConsumeBottles(rec, d.Bottles); err != nil {
				return nil, err
			}
		}
		if d.VolumeMl > 0 {
			if rec, err = Consume(rec, size, d.VolumeMl); err != nil {
				return nil, err
			}
		}
		projected[d.LiquorID] = rec
	}
	return projected, nil
}

// Feasible reports whether all demands fit the base records, and if not, which
// liquor runs short first.
func Feasible(base map[string]entity.StockRecord, sizes map[string]int, staged []Demand) error {
	_, err := Project(base, sizes, staged)
	return err
}

// MaxAdditionalUnits counts how many more units of the candidate demand can be
// added on top of an already-projected state before stock runs out. A unit is
// one whole application of the candidate (its bottles plus its volume).
func MaxAdditionalUnits(projected map[string]entity.StockRecord, sizes map[string]int, candidate Demand) (int, error) {
	if candidate.Bottles <= 0 && candidate.VolumeMl <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	rec, ok := projected[candidate.LiquorID]
	if !ok {
		rec = entity.StockRecord{LiquorID: candidate.LiquorID}
	}
	size := sizes[candidate.LiquorID]
	count := 0
	for {
		next := rec
		var err error
		if candidate.Bottles > 0 {
			if next, err = ConsumeBottles(next, candidate.Bottles); err != nil {
				break
			}
		}
		if candidate.VolumeMl > 0 {
			if next, err = Consume(next, size, candidate.VolumeMl); err != nil {
				break
			}
		}
		rec = next
		count++
	}
	return count, nil
}

// MaxAdditionalDrinks is MaxAdditionalUnits across a multi-ingredient recipe:
// the largest n for which n drinks' worth of every ingredient still fits.
func MaxAdditionalDrinks(projected map[string]entity.StockRecord, sizes map[string]int, perDrink []Demand) (int, error) {
	if len(perDrink) == 0 {
		return 0, domain.ErrInvalidInput
	}
	count := 0
	for {
		staged := make([]Demand, 0, len(perDrink)*(count+1))
		for i := 0; i < count+1; i++ {
			staged = append(staged, perDrink...)
		}
		if err := Feasible(projected, sizes, staged); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return count, nil
			}
			return 0, err
		}
		count++
	}
}
