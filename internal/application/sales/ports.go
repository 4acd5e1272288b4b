package sales

import (
	"context"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// TxRunner runs fn inside a database transaction with repositories bound to
// it. A sale commits its stock mutations, ledger appends and bill snapshot
// through the same transaction or not at all.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(stocks repository.StockRepository, ledger repository.SaleRepository, bills repository.BillRepository) error) error
}
