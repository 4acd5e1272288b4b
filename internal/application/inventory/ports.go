package inventory

import (
	"context"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// TxRunner runs fn inside a database transaction with repositories bound to
// it. Stock rows touched through the transaction-scoped StockRepository are
// locked until commit.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(stocks repository.StockRepository, transfers repository.TransferRepository) error) error
}
