package billing

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

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

type stubCommitter struct {
	gotLocation int
	gotLines    []dto.OrderLine
	gotActor    string
	resp        *dto.BillResponse
	err         error
}

func (s *stubCommitter) CommitOrder(ctx context.Context, location int, lines []dto.OrderLine, actor string) (*dto.BillResponse, error) {
	s.gotLocation = location
	s.gotLines = lines
	s.gotActor = actor
	return s.resp, s.err
}

func billAt(t *testing.T, id, day string) *entity.Bill {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02", day, time.Local)
	require.NoError(t, err)
	return &entity.Bill{BillID: id, Timestamp: ts, Total: decimal.NewFromInt(100)}
}

func TestCommitBill_DelegatesToCommitter(t *testing.T) {
	committer := &stubCommitter{resp: &dto.BillResponse{BillID: "b1"}}
	uc := NewBillUseCase(&memBillRepo{}, committer, time.Local, zerolog.Nop())

	lines := []dto.OrderLine{{Kind: entity.SaleKindBottle, LiquorID: "w1", Quantity: 2}}
	out, err := uc.CommitBill(context.Background(), dto.CommitBillRequest{Location: 2, Lines: lines}, "kasun")
	require.NoError(t, err)
	assert.Equal(t, "b1", out.BillID)
	assert.Equal(t, 2, committer.gotLocation)
	assert.Equal(t, lines, committer.gotLines)
	assert.Equal(t, "kasun", committer.gotActor)
}

func TestListBills_ByMonth(t *testing.T) {
	repo := &memBillRepo{bills: []*entity.Bill{
		billAt(t, "feb", "2026-02-28"),
		billAt(t, "mar-early", "2026-03-01"),
		billAt(t, "mar-late", "2026-03-31"),
		billAt(t, "apr", "2026-04-01"),
	}}
	uc := NewBillUseCase(repo, &stubCommitter{}, time.Local, zerolog.Nop())

	out, err := uc.ListBills(context.Background(), "2026-03", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	ids := []string{out[0].BillID, out[1].BillID}
	assert.ElementsMatch(t, []string{"mar-early", "mar-late"}, ids)

	_, err = uc.ListBills(context.Background(), "03/2026", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListBills_MonthBoundaryFollowsConfiguredZone(t *testing.T) {
	tz := time.FixedZone("UTC+10", 10*3600)
	// 2026-02-28 18:00 UTC is already March 1st in UTC+10.
	edge := &entity.Bill{BillID: "edge", Timestamp: time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(100)}
	// 2026-03-31 20:00 UTC is already April 1st in UTC+10.
	late := &entity.Bill{BillID: "late", Timestamp: time.Date(2026, 3, 31, 20, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(100)}
	repo := &memBillRepo{bills: []*entity.Bill{edge, late}}
	uc := NewBillUseCase(repo, &stubCommitter{}, tz, zerolog.Nop())

	out, err := uc.ListBills(context.Background(), "2026-03", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "edge", out[0].BillID)
}

func TestDeleteBill_RemovesBillOnly(t *testing.T) {
	repo := &memBillRepo{bills: []*entity.Bill{billAt(t, "b1", "2026-03-10")}}
	uc := NewBillUseCase(repo, &stubCommitter{}, time.Local, zerolog.Nop())

	require.NoError(t, uc.DeleteBill(context.Background(), "b1", "admin"))
	assert.Empty(t, repo.bills)

	err := uc.DeleteBill(context.Background(), "b1", "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBill_NotFound(t *testing.T) {
	uc := NewBillUseCase(&memBillRepo{}, &stubCommitter{}, time.Local, zerolog.Nop())
	_, err := uc.GetBill(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
