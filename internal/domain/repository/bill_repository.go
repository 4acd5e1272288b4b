package repository

import (
	"time"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// BillRepository is the port for bill documents with their frozen item
// snapshots.
type BillRepository interface {
	Create(bill *entity.Bill) error
	GetByID(billID string) (*entity.Bill, error)
	// ListBetween returns bills with from <= timestamp < to, newest first.
	ListBetween(from, to time.Time) ([]*entity.Bill, error)
	ListAll(limit, offset int) ([]*entity.Bill, error)
	// Delete hard-removes a bill. Stock is not restored: deletion is an
	// administrative audit correction, not an inverse sale.
	Delete(billID string) error
}
