package reporting

import (
	"context"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// TxRunner runs fn inside a read-only repeatable-read transaction with
// repositories bound to it. The stock snapshot and the event logs must come
// from a single point in time: the reverse walk is only valid when the
// snapshot already reflects every log row it is asked to undo.
type TxRunner interface {
	RunReport(ctx context.Context, fn func(stocks repository.StockRepository, ledger repository.SaleRepository, transfers repository.TransferRepository) error) error
}
