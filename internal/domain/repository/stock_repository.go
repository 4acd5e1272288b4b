package repository

import (
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// StockRepository is the port for per-(liquor, location) stock records. Writers
// run inside transactions and take the row lock first; the record row is the
// unit of mutual exclusion for all stock mutations.
type StockRepository interface {
	Get(liquorID string, loc domain.Location) (*entity.StockRecord, error)
	// GetForUpdate locks the row (SELECT FOR UPDATE) so concurrent sales and
	// transfers on the same record serialize. Returns nil if no record exists
	// yet.
	GetForUpdate(liquorID string, loc domain.Location) (*entity.StockRecord, error)
	Upsert(rec *entity.StockRecord) error
	Delete(liquorID string, loc domain.Location) error
	ListByLocation(loc domain.Location) ([]*entity.StockRecord, error)
	ListAll() ([]*entity.StockRecord, error)
}
