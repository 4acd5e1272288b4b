package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo is the PostgreSQL adapter for stock records. The (liquor_id,
// location) row is the locking unit for every stock mutation.
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the adapter. Pass a pool or a tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func (r *StockRepo) Get(liquorID string, loc domain.Location) (*entity.StockRecord, error) {
	query := `
		SELECT id, liquor_id, location, bottles, open_ml, updated_at
		FROM stock WHERE liquor_id = $1 AND location = $2`
	return scanStock(r.q.QueryRow(context.Background(), query, liquorID, int(loc)))
}

// GetForUpdate locks the row until the surrounding transaction ends, so
// concurrent sales and transfers on the same record serialize.
func (r *StockRepo) GetForUpdate(liquorID string, loc domain.Location) (*entity.StockRecord, error) {
	query := `
		SELECT id, liquor_id, location, bottles, open_ml, updated_at
		FROM stock WHERE liquor_id = $1 AND location = $2
		FOR UPDATE`
	return scanStock(r.q.QueryRow(context.Background(), query, liquorID, int(loc)))
}

func (r *StockRepo) Upsert(rec *entity.StockRecord) error {
	query := `
		INSERT INTO stock (id, liquor_id, location, bottles, open_ml, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (liquor_id, location)
		DO UPDATE SET bottles = EXCLUDED.bottles, open_ml = EXCLUDED.open_ml, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.LiquorID, int(rec.Location), rec.Bottles, rec.OpenMl)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

func (r *StockRepo) Delete(liquorID string, loc domain.Location) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock WHERE liquor_id = $1 AND location = $2`, liquorID, int(loc))
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func (r *StockRepo) ListByLocation(loc domain.Location) ([]*entity.StockRecord, error) {
	query := `
		SELECT id, liquor_id, location, bottles, open_ml, updated_at
		FROM stock WHERE location = $1 ORDER BY liquor_id`
	rows, err := r.q.Query(context.Background(), query, int(loc))
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return collectStock(rows)
}

func (r *StockRepo) ListAll() ([]*entity.StockRecord, error) {
	query := `
		SELECT id, liquor_id, location, bottles, open_ml, updated_at
		FROM stock ORDER BY liquor_id, location`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return collectStock(rows)
}

func scanStock(row pgx.Row) (*entity.StockRecord, error) {
	var (
		rec entity.StockRecord
		loc int
	)
	err := row.Scan(&rec.ID, &rec.LiquorID, &loc, &rec.Bottles, &rec.OpenMl, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	rec.Location = domain.Location(loc)
	return &rec, nil
}

func collectStock(rows pgx.Rows) ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	for rows.Next() {
		var (
			rec entity.StockRecord
			loc int
		)
		if err := rows.Scan(&rec.ID, &rec.LiquorID, &loc, &rec.Bottles, &rec.OpenMl, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		rec.Location = domain.Location(loc)
		out = append(out, &rec)
	}
	return out, rows.Err()
}
