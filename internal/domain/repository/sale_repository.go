package repository

import (
	"time"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// SaleRepository is the port for the append-only sale ledger.
type SaleRepository interface {
	Create(line *entity.SaleLine) error
	ListByBill(billID string) ([]*entity.SaleLine, error)
	// ListBetween returns all lines with from <= timestamp < to, ordered by
	// timestamp ascending. Used by the historical reconstructor.
	ListBetween(from, to time.Time) ([]*entity.SaleLine, error)
	ListAll(limit, offset int) ([]*entity.SaleLine, error)
}
