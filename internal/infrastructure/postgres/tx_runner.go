package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/inventory"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/reporting"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/sales"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// Ensure TxRunner satisfies the application ports.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ reporting.TxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks inside a PostgreSQL transaction with repositories
// bound to it.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunStock begins a transaction, runs fn with tx-scoped stock and transfer
// repositories, and commits or rolls back.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	stocks repository.StockRepository,
	transfers repository.TransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx), NewTransferRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReport begins a read-only repeatable-read transaction so the stock
// snapshot and the sale/transfer logs are read from the same database
// snapshot. Reconstruction over a snapshot that lags the logs would undo
// events the snapshot never absorbed.
func (r *TxRunner) RunReport(ctx context.Context, fn func(
	stocks repository.StockRepository,
	ledger repository.SaleRepository,
	transfers repository.TransferRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx), NewSaleRepository(tx), NewTransferRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale begins a transaction with the repositories a sale commit touches:
// stock records, the sale ledger and the bill documents.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	stocks repository.StockRepository,
	ledger repository.SaleRepository,
	bills repository.BillRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx), NewSaleRepository(tx), NewBillRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
