package billing

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// OrderCommitter commits a multi-line order atomically and returns the
// resulting bill. Implemented by the sales use case.
type OrderCommitter interface {
	CommitOrder(ctx context.Context, location int, lines []dto.OrderLine, actor string) (*dto.BillResponse, error)
}

// BillUseCase serves the bill documents: committing multi-line orders and
// querying or hard-deleting past bills.
type BillUseCase struct {
	billRepo  repository.BillRepository
	committer OrderCommitter
	tz        *time.Location
	log       zerolog.Logger
}

// NewBillUseCase builds the use case. tz is the business day boundary
// timezone used for month filters, the same zone the reports use; nil means
// the server's local zone.
func NewBillUseCase(billRepo repository.BillRepository, committer OrderCommitter, tz *time.Location, log zerolog.Logger) *BillUseCase {
	if tz == nil {
		tz = time.Local
	}
	return &BillUseCase{billRepo: billRepo, committer: committer, tz: tz, log: log}
}

// CommitBill commits every line of the order under one bill, atomically.
func (uc *BillUseCase) CommitBill(ctx context.Context, in dto.CommitBillRequest, actor string) (*dto.BillResponse, error) {
	return uc.committer.CommitOrder(ctx, in.Location, in.Lines, actor)
}

// GetBill returns one bill with its frozen items.
func (uc *BillUseCase) GetBill(ctx context.Context, billID string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return toBillResponse(bill), nil
}

// ListBills returns bills newest first. With month set ("2006-01"), only that
// calendar month is returned.
func (uc *BillUseCase) ListBills(ctx context.Context, month string, page dto.PageRequest) ([]*dto.BillResponse, error) {
	var (
		bills []*entity.Bill
		err   error
	)
	if month != "" {
		start, perr := time.ParseInLocation("2006-01", month, uc.tz)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		bills, err = uc.billRepo.ListBetween(start, start.AddDate(0, 1, 0))
	} else {
		page.DefaultPage()
		bills, err = uc.billRepo.ListAll(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toBillResponse(b))
	}
	return out, nil
}

// DeleteBill hard-removes a bill. This is an administrative audit correction:
// the sale ledger and stock records are deliberately left alone, so a
// reconstruction over the period still reflects what was actually poured.
func (uc *BillUseCase) DeleteBill(ctx context.Context, billID string, actor string) error {
	bill, err := uc.billRepo.GetByID(billID)
	if err != nil {
		return err
	}
	if bill == nil {
		return domain.ErrNotFound
	}
	if err := uc.billRepo.Delete(billID); err != nil {
		return err
	}
	uc.log.Warn().
		Str("bill_id", billID).
		Str("actor", actor).
		Str("total", bill.Total.String()).
		Msg("bill deleted, stock not restored")
	return nil
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	resp := &dto.BillResponse{
		BillID:    b.BillID,
		Total:     b.Total,
		Timestamp: b.Timestamp.Format(time.RFC3339),
		Actor:     b.Actor,
	}
	for _, it := range b.Items {
		item := dto.BillItemResponse{
			Brand:      it.Brand,
			Kind:       it.Kind,
			LiquorID:   it.LiquorID,
			CocktailID: it.CocktailID,
			Quantity:   it.Quantity,
			PourSizeMl: it.PourSizeMl,
			Price:      it.Price,
		}
		for _, ing := range it.Ingredients {
			item.Ingredients = append(item.Ingredients, dto.IngredientResponse{
				LiquorID: ing.LiquorID,
				Brand:    ing.Brand,
				VolumeMl: ing.VolumeMl,
			})
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}
