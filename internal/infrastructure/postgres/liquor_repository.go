package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

var _ repository.LiquorRepository = (*LiquorRepo)(nil)

// LiquorRepo is the PostgreSQL adapter for the liquor catalog. Pour prices are
// stored as JSONB keyed by pour size.
type LiquorRepo struct {
	q Querier
}

// NewLiquorRepository builds the adapter. Pass a pool or a tx (Querier).
func NewLiquorRepository(q Querier) *LiquorRepo {
	return &LiquorRepo{q: q}
}

const liquorColumns = `id, brand, size_ml, barcode, bottle_price, pour_prices, created_at, updated_at`

func (r *LiquorRepo) Create(l *entity.Liquor) error {
	prices, err := json.Marshal(l.PourPrices)
	if err != nil {
		return fmt.Errorf("marshal pour prices: %w", err)
	}
	query := `
		INSERT INTO liquors (id, brand, size_ml, barcode, bottle_price, pour_prices, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	_, err = r.q.Exec(context.Background(), query,
		l.ID, l.Brand, l.SizeMl, l.Barcode, l.BottlePrice, prices)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert liquor: %w", err)
	}
	return nil
}

func (r *LiquorRepo) GetByID(id string) (*entity.Liquor, error) {
	query := `SELECT ` + liquorColumns + ` FROM liquors WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *LiquorRepo) GetByBarcode(barcode string) (*entity.Liquor, error) {
	query := `SELECT ` + liquorColumns + ` FROM liquors WHERE barcode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode))
}

func (r *LiquorRepo) List() ([]*entity.Liquor, error) {
	query := `SELECT ` + liquorColumns + ` FROM liquors ORDER BY brand`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list liquors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Liquor
	for rows.Next() {
		l, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LiquorRepo) Update(l *entity.Liquor) error {
	prices, err := json.Marshal(l.PourPrices)
	if err != nil {
		return fmt.Errorf("marshal pour prices: %w", err)
	}
	query := `
		UPDATE liquors
		SET brand = $2, size_ml = $3, barcode = $4, bottle_price = $5, pour_prices = $6, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		l.ID, l.Brand, l.SizeMl, l.Barcode, l.BottlePrice, prices)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update liquor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LiquorRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM liquors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete liquor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LiquorRepo) scanOne(row pgx.Row) (*entity.Liquor, error) {
	l, err := scanLiquor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get liquor: %w", err)
	}
	return l, nil
}

func (r *LiquorRepo) scanRow(rows pgx.Rows) (*entity.Liquor, error) {
	l, err := scanLiquor(rows)
	if err != nil {
		return nil, fmt.Errorf("scan liquor: %w", err)
	}
	return l, nil
}

func scanLiquor(row pgx.Row) (*entity.Liquor, error) {
	var (
		l      entity.Liquor
		prices []byte
	)
	if err := row.Scan(&l.ID, &l.Brand, &l.SizeMl, &l.Barcode, &l.BottlePrice, &prices, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if len(prices) > 0 {
		if err := json.Unmarshal(prices, &l.PourPrices); err != nil {
			return nil, fmt.Errorf("unmarshal pour prices: %w", err)
		}
	}
	return &l, nil
}
