// Package stock holds the pure stock arithmetic: the pour/depletion algorithm,
// its exact inverse used for historical reconstruction, and the speculative
// projection used to preview an in-progress order. All functions take and
// return StockRecord values; nothing here touches storage, so a failed call
// leaves the caller's record untouched by construction.
package stock

import (
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// Consume depletes requestedMl from a record: first the open bottle, then
// sealed bottles cracked one at a time as needed. OpenMl afterwards is always
// the remainder of the most recently opened bottle, strictly below sizeMl.
//
// Returns *domain.InsufficientStockError with the exact ml shortfall when the
// total remaining volume cannot cover the request.
func Consume(rec entity.StockRecord, sizeMl, requestedMl int) (entity.StockRecord, error) {
	if requestedMl <= 0 {
		return rec, domain.ErrInvalidQuantity
	}
	if sizeMl <= 0 {
		return rec, domain.ErrInvalidInput
	}
	if total := rec.TotalMl(sizeMl); total < requestedMl {
		return rec, &domain.InsufficientStockError{
			LiquorID:    rec.LiquorID,
			ShortfallMl: requestedMl - total,
		}
	}

	remaining := requestedMl
	if rec.OpenMl >= remaining {
		rec.OpenMl -= remaining
		return rec, nil
	}
	remaining -= rec.OpenMl
	rec.OpenMl = 0
	for remaining > 0 {
		// Sufficiency was checked up front, so a bottle is always available here.
		rec.Bottles--
		rec.OpenMl = sizeMl
		if rec.OpenMl >= remaining {
			rec.OpenMl -= remaining
			remaining = 0
		} else {
			remaining -= rec.OpenMl
			rec.OpenMl = 0
		}
	}
	return rec, nil
}

// ConsumeBottles removes n sealed bottles. The whole-bottle primitive under
// bottle sales and transfers.
func ConsumeBottles(rec entity.StockRecord, n int) (entity.StockRecord, error) {
	if n <= 0 {
		return rec, domain.ErrInvalidQuantity
	}
	if rec.Bottles < n {
		return rec, &domain.InsufficientStockError{
			LiquorID:         rec.LiquorID,
			ShortfallBottles: n - rec.Bottles,
		}
	}
	rec.Bottles -= n
	return rec, nil
}

// Restore is the exact inverse of Consume: it adds ml back, closing a
// "rollback bottle" whenever the open volume would reach full capacity. Used
// by the historical reconstructor to walk backwards through the sale ledger.
//
//	Restore(Consume(rec, size, ml), size, ml) == rec
func Restore(rec entity.StockRecord, sizeMl, ml int) (entity.StockRecord, error) {
	if ml <= 0 {
		return rec, domain.ErrInvalidQuantity
	}
	if sizeMl <= 0 {
		return rec, domain.ErrInvalidInput
	}
	rec.OpenMl += ml
	for rec.OpenMl >= sizeMl {
		rec.OpenMl -= sizeMl
		rec.Bottles++
	}
	return rec, nil
}

// RestoreBottles reverses ConsumeBottles.
func RestoreBottles(rec entity.StockRecord, n int) (entity.StockRecord, error) {
	if n <= 0 {
		return rec, domain.ErrInvalidQuantity
	}
	rec.Bottles += n
	return rec, nil
}
