package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo is the PostgreSQL adapter for the append-only sale ledger. There is
// no update or delete; corrections happen at the bill level.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the adapter. Pass a pool or a tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, bill_id, liquor_id, cocktail_id, location, kind, quantity, pour_size_ml, drink_count, unit_price, ts, actor`

func (r *SaleRepo) Create(line *entity.SaleLine) error {
	query := `
		INSERT INTO sales (id, bill_id, liquor_id, cocktail_id, location, kind, quantity, pour_size_ml, drink_count, unit_price, ts, actor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.BillID, line.LiquorID, nullIfEmpty(line.CocktailID), int(line.Location),
		line.Kind, line.Quantity, line.PourSizeMl, line.DrinkCount, line.UnitPrice, line.Timestamp, line.Actor)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

func (r *SaleRepo) ListByBill(billID string) ([]*entity.SaleLine, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE bill_id = $1 ORDER BY ts, id`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list sales by bill: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func (r *SaleRepo) ListBetween(from, to time.Time) ([]*entity.SaleLine, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE ts >= $1 AND ts < $2 ORDER BY ts, id`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales between: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func (r *SaleRepo) ListAll(limit, offset int) ([]*entity.SaleLine, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY ts DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for rows.Next() {
		var (
			line       entity.SaleLine
			cocktailID *string
			loc        int
		)
		if err := rows.Scan(&line.ID, &line.BillID, &line.LiquorID, &cocktailID, &loc,
			&line.Kind, &line.Quantity, &line.PourSizeMl, &line.DrinkCount, &line.UnitPrice,
			&line.Timestamp, &line.Actor); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		if cocktailID != nil {
			line.CocktailID = *cocktailID
		}
		line.Location = domain.Location(loc)
		out = append(out, &line)
	}
	return out, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
