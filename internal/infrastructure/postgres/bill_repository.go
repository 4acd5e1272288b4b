package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo is the PostgreSQL adapter for bill documents. The frozen item
// snapshots live as JSONB on the bill row; the relational history stays in the
// sales table.
type BillRepo struct {
	q Querier
}

// NewBillRepository builds the adapter. Pass a pool or a tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

func (r *BillRepo) Create(b *entity.Bill) error {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return fmt.Errorf("marshal bill items: %w", err)
	}
	query := `
		INSERT INTO bills (bill_id, items, total, ts, actor)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.q.Exec(context.Background(), query, b.BillID, items, b.Total, b.Timestamp, b.Actor)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

func (r *BillRepo) GetByID(billID string) (*entity.Bill, error) {
	query := `SELECT bill_id, items, total, ts, actor FROM bills WHERE bill_id = $1`
	b, err := scanBill(r.q.QueryRow(context.Background(), query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

func (r *BillRepo) ListBetween(from, to time.Time) ([]*entity.Bill, error) {
	query := `SELECT bill_id, items, total, ts, actor FROM bills WHERE ts >= $1 AND ts < $2 ORDER BY ts DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bills between: %w", err)
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *BillRepo) ListAll(limit, offset int) ([]*entity.Bill, error) {
	query := `SELECT bill_id, items, total, ts, actor FROM bills ORDER BY ts DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *BillRepo) Delete(billID string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM bills WHERE bill_id = $1`, billID)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var (
		b     entity.Bill
		items []byte
	)
	if err := row.Scan(&b.BillID, &items, &b.Total, &b.Timestamp, &b.Actor); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &b.Items); err != nil {
			return nil, fmt.Errorf("unmarshal bill items: %w", err)
		}
	}
	return &b, nil
}

func collectBills(rows pgx.Rows) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
