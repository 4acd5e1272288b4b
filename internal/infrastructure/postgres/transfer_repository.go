package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo is the PostgreSQL adapter for the transfer log.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository builds the adapter. Pass a pool or a tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, liquor_id, from_location, to_location, bottles, ts, actor`

func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, liquor_id, from_location, to_location, bottles, ts, actor)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.LiquorID, int(t.From), int(t.To), t.Bottles, t.Timestamp, t.Actor)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	t, err := scanTransfer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

func (r *TransferRepo) ListBetween(from, to time.Time) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE ts >= $1 AND ts < $2 ORDER BY ts, id`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transfers between: %w", err)
	}
	defer rows.Close()
	return collectTransfers(rows)
}

func (r *TransferRepo) ListAll(limit, offset int) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers ORDER BY ts DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	return collectTransfers(rows)
}

func (r *TransferRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var (
		t        entity.Transfer
		from, to int
	)
	if err := row.Scan(&t.ID, &t.LiquorID, &from, &to, &t.Bottles, &t.Timestamp, &t.Actor); err != nil {
		return nil, err
	}
	t.From = domain.Location(from)
	t.To = domain.Location(to)
	return &t, nil
}

func collectTransfers(rows pgx.Rows) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
