package sales

import (
	"context"
	"time"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// SaleUseCase commits sales against the stock records and the append-only
// ledger. The quick Sell* operations are one-line orders; multi-line orders go
// through CommitOrder.
type SaleUseCase struct {
	liquorRepo   repository.LiquorRepository
	cocktailRepo repository.CocktailRepository
	stockRepo    repository.StockRepository
	saleRepo     repository.SaleRepository
	tx           TxRunner
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(
	liquorRepo repository.LiquorRepository,
	cocktailRepo repository.CocktailRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	tx TxRunner,
) *SaleUseCase {
	return &SaleUseCase{
		liquorRepo:   liquorRepo,
		cocktailRepo: cocktailRepo,
		stockRepo:    stockRepo,
		saleRepo:     saleRepo,
		tx:           tx,
	}
}

// SellBottle sells sealed bottles over the counter.
func (uc *SaleUseCase) SellBottle(ctx context.Context, in dto.SellBottleRequest, actor string) (*dto.BillResponse, error) {
	return uc.CommitOrder(ctx, in.Location, []dto.OrderLine{{
		Kind:     entity.SaleKindBottle,
		LiquorID: in.LiquorID,
		Quantity: in.Quantity,
	}}, actor)
}

// SellPour sells pours of a priced size.
func (uc *SaleUseCase) SellPour(ctx context.Context, in dto.SellPourRequest, actor string) (*dto.BillResponse, error) {
	return uc.CommitOrder(ctx, in.Location, []dto.OrderLine{{
		Kind:       entity.SaleKindPour,
		LiquorID:   in.LiquorID,
		PourSizeMl: in.PourSizeMl,
		Quantity:   in.Quantity,
	}}, actor)
}

// SellCocktail sells mixed drinks, depleting every ingredient.
func (uc *SaleUseCase) SellCocktail(ctx context.Context, in dto.SellCocktailRequest, actor string) (*dto.BillResponse, error) {
	return uc.CommitOrder(ctx, in.Location, []dto.OrderLine{{
		Kind:       entity.SaleKindCocktail,
		CocktailID: in.CocktailID,
		Quantity:   in.Quantity,
	}}, actor)
}

// ListSales returns ledger entries, newest first.
func (uc *SaleUseCase) ListSales(ctx context.Context, page dto.PageRequest) ([]*dto.SaleLineResponse, error) {
	page.DefaultPage()
	lines, err := uc.saleRepo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, toSaleLineResponse(l))
	}
	return out, nil
}

// ListByBill returns the ledger entries of one bill.
func (uc *SaleUseCase) ListByBill(ctx context.Context, billID string) ([]*dto.SaleLineResponse, error) {
	lines, err := uc.saleRepo.ListByBill(billID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, toSaleLineResponse(l))
	}
	return out, nil
}

func toSaleLineResponse(l *entity.SaleLine) *dto.SaleLineResponse {
	return &dto.SaleLineResponse{
		ID:         l.ID,
		BillID:     l.BillID,
		LiquorID:   l.LiquorID,
		CocktailID: l.CocktailID,
		Location:   int(l.Location),
		Kind:       l.Kind,
		Quantity:   l.Quantity,
		PourSizeMl: l.PourSizeMl,
		DrinkCount: l.DrinkCount,
		UnitPrice:  l.UnitPrice,
		Timestamp:  l.Timestamp.Format(time.RFC3339),
		Actor:      l.Actor,
	}
}
