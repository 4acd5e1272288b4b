package sales

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
	require.NoError(t, err)
	return ts
}

// In-memory repositories for use case tests. No locking: tests are
// single-goroutine.

type memLiquorRepo struct {
	items map[string]*entity.Liquor
}

func newMemLiquorRepo(liquors ...*entity.Liquor) *memLiquorRepo {
	r := &memLiquorRepo{items: make(map[string]*entity.Liquor)}
	for _, l := range liquors {
		r.items[l.ID] = l
	}
	return r
}

func (r *memLiquorRepo) Create(l *entity.Liquor) error {
	if _, ok := r.items[l.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[l.ID] = l
	return nil
}

func (r *memLiquorRepo) GetByID(id string) (*entity.Liquor, error) {
	l := r.items[id]
	if l == nil {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLiquorRepo) GetByBarcode(barcode string) (*entity.Liquor, error) {
	for _, l := range r.items {
		if l.Barcode == barcode {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLiquorRepo) List() ([]*entity.Liquor, error) {
	out := make([]*entity.Liquor, 0, len(r.items))
	for _, l := range r.items {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memLiquorRepo) Update(l *entity.Liquor) error {
	if _, ok := r.items[l.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[l.ID] = l
	return nil
}

func (r *memLiquorRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memCocktailRepo struct {
	items map[string]*entity.Cocktail
}

func newMemCocktailRepo(cocktails ...*entity.Cocktail) *memCocktailRepo {
	r := &memCocktailRepo{items: make(map[string]*entity.Cocktail)}
	for _, c := range cocktails {
		r.items[c.ID] = c
	}
	return r
}

func (r *memCocktailRepo) Create(c *entity.Cocktail) error { r.items[c.ID] = c; return nil }

func (r *memCocktailRepo) GetByID(id string) (*entity.Cocktail, error) {
	c := r.items[id]
	if c == nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCocktailRepo) List() ([]*entity.Cocktail, error) {
	out := make([]*entity.Cocktail, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCocktailRepo) Update(c *entity.Cocktail) error { r.items[c.ID] = c; return nil }
func (r *memCocktailRepo) Delete(id string) error          { delete(r.items, id); return nil }

type stockKey struct {
	liquorID string
	loc      domain.Location
}

type memStockRepo struct {
	items map[stockKey]*entity.StockRecord
}

func newMemStockRepo(recs ...*entity.StockRecord) *memStockRepo {
	r := &memStockRepo{items: make(map[stockKey]*entity.StockRecord)}
	for _, rec := range recs {
		r.items[stockKey{rec.LiquorID, rec.Location}] = rec
	}
	return r
}

func (r *memStockRepo) Get(liquorID string, loc domain.Location) (*entity.StockRecord, error) {
	rec := r.items[stockKey{liquorID, loc}]
	if rec == nil {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *memStockRepo) GetForUpdate(liquorID string, loc domain.Location) (*entity.StockRecord, error) {
	return r.Get(liquorID, loc)
}

func (r *memStockRepo) Upsert(rec *entity.StockRecord) error {
	cp := *rec
	r.items[stockKey{rec.LiquorID, rec.Location}] = &cp
	return nil
}

func (r *memStockRepo) Delete(liquorID string, loc domain.Location) error {
	delete(r.items, stockKey{liquorID, loc})
	return nil
}

func (r *memStockRepo) ListByLocation(loc domain.Location) ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	for k, rec := range r.items {
		if k.loc == loc {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListAll() ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	for _, rec := range r.items {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

type memSaleRepo struct {
	lines []*entity.SaleLine
}

func (r *memSaleRepo) Create(line *entity.SaleLine) error {
	cp := *line
	r.lines = append(r.lines, &cp)
	return nil
}

func (r *memSaleRepo) ListByBill(billID string) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range r.lines {
		if l.BillID == billID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSaleRepo) ListBetween(from, to time.Time) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range r.lines {
		if !l.Timestamp.Before(from) && l.Timestamp.Before(to) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSaleRepo) ListAll(limit, offset int) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for i := len(r.lines) - 1; i >= 0; i-- {
		cp := *r.lines[i]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type memBillRepo struct {
	bills []*entity.Bill
}

func (r *memBillRepo) Create(b *entity.Bill) error {
	cp := *b
	r.bills = append(r.bills, &cp)
	return nil
}

func (r *memBillRepo) GetByID(billID string) (*entity.Bill, error) {
	for _, b := range r.bills {
		if b.BillID == billID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memBillRepo) ListBetween(from, to time.Time) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range r.bills {
		if !b.Timestamp.Before(from) && b.Timestamp.Before(to) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memBillRepo) ListAll(limit, offset int) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for i := len(r.bills) - 1; i >= 0; i-- {
		cp := *r.bills[i]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memBillRepo) Delete(billID string) error {
	for i, b := range r.bills {
		if b.BillID == billID {
			r.bills = append(r.bills[:i], r.bills[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// memTx runs the callback against the shared in-memory repos. It snapshots
// the stock map first and rolls it back if fn fails, mirroring the atomicity
// the real transaction provides.
type memTx struct {
	stocks *memStockRepo
	ledger *memSaleRepo
	bills  *memBillRepo
}

func (t *memTx) RunSale(ctx context.Context, fn func(repository.StockRepository, repository.SaleRepository, repository.BillRepository) error) error {
	snapshot := make(map[stockKey]*entity.StockRecord, len(t.stocks.items))
	for k, rec := range t.stocks.items {
		cp := *rec
		snapshot[k] = &cp
	}
	nLines, nBills := len(t.ledger.lines), len(t.bills.bills)
	if err := fn(t.stocks, t.ledger, t.bills); err != nil {
		t.stocks.items = snapshot
		t.ledger.lines = t.ledger.lines[:nLines]
		t.bills.bills = t.bills.bills[:nBills]
		return err
	}
	return nil
}
