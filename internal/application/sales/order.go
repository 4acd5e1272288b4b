package sales

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/stock"
)

// resolvedLine is one order line with its price and stock cost worked out
// against the catalog. Demands carry the full cost of the line (quantity
// already multiplied in).
type resolvedLine struct {
	kind       string
	liquor     *entity.Liquor
	cocktail   *entity.Cocktail
	quantity   int
	pourSizeMl int
	unitPrice  decimal.Decimal
	linePrice  decimal.Decimal
	demands    []stock.Demand
}

// resolveLine validates one order line against the catalog and computes its
// price and stock demands.
func (uc *SaleUseCase) resolveLine(line dto.OrderLine) (*resolvedLine, error) {
	if line.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	switch line.Kind {
	case entity.SaleKindBottle:
		liquor, err := uc.mustLiquor(line.LiquorID)
		if err != nil {
			return nil, err
		}
		return &resolvedLine{
			kind:      entity.SaleKindBottle,
			liquor:    liquor,
			quantity:  line.Quantity,
			unitPrice: liquor.BottlePrice,
			linePrice: liquor.BottlePrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			demands:   []stock.Demand{{LiquorID: liquor.ID, Bottles: line.Quantity}},
		}, nil
	case entity.SaleKindPour:
		liquor, err := uc.mustLiquor(line.LiquorID)
		if err != nil {
			return nil, err
		}
		price, ok := liquor.PourPrice(line.PourSizeMl)
		if !ok {
			return nil, fmt.Errorf("%w: no price for %dml pour of %s", domain.ErrNotFound, line.PourSizeMl, liquor.Brand)
		}
		return &resolvedLine{
			kind:       entity.SaleKindPour,
			liquor:     liquor,
			quantity:   line.Quantity,
			pourSizeMl: line.PourSizeMl,
			unitPrice:  price,
			linePrice:  price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			demands:    []stock.Demand{{LiquorID: liquor.ID, VolumeMl: line.PourSizeMl * line.Quantity}},
		}, nil
	case entity.SaleKindCocktail:
		cocktail, err := uc.cocktailRepo.GetByID(line.CocktailID)
		if err != nil {
			return nil, err
		}
		if cocktail == nil {
			return nil, domain.ErrNotFound
		}
		demands := make([]stock.Demand, 0, len(cocktail.Ingredients))
		for _, ing := range cocktail.Ingredients {
			demands = append(demands, stock.Demand{
				LiquorID: ing.LiquorID,
				VolumeMl: ing.VolumeMl * line.Quantity,
			})
		}
		return &resolvedLine{
			kind:      entity.SaleKindCocktail,
			cocktail:  cocktail,
			quantity:  line.Quantity,
			unitPrice: cocktail.Price,
			linePrice: cocktail.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			demands:   demands,
		}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (uc *SaleUseCase) mustLiquor(id string) (*entity.Liquor, error) {
	liquor, err := uc.liquorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if liquor == nil {
		return nil, domain.ErrNotFound
	}
	return liquor, nil
}

// newBillID builds a bill identifier that sorts chronologically and stays
// unique under concurrent commits: second-resolution time prefix plus a random
// suffix.
func newBillID(at time.Time) string {
	return at.Format("20060102-150405") + "-" + strings.SplitN(uuid.New().String(), "-", 2)[0]
}

// CommitOrder commits an order as one bill: locks every touched stock row in
// sorted liquor order, checks the whole order fits up front, then applies the
// depletions, appends the ledger lines and writes the bill snapshot, all in
// one transaction. Any shortfall aborts everything.
func (uc *SaleUseCase) CommitOrder(ctx context.Context, location int, lines []dto.OrderLine, actor string) (*dto.BillResponse, error) {
	loc := domain.Location(location)
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	resolved := make([]*resolvedLine, 0, len(lines))
	for _, line := range lines {
		r, err := uc.resolveLine(line)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}

	// Every liquor the order touches, with its bottle size. Cocktails pull in
	// their ingredients here.
	sizes := make(map[string]int)
	brands := make(map[string]string)
	for _, r := range resolved {
		for _, d := range r.demands {
			if _, ok := sizes[d.LiquorID]; ok {
				continue
			}
			liquor, err := uc.mustLiquor(d.LiquorID)
			if err != nil {
				return nil, err
			}
			sizes[d.LiquorID] = liquor.SizeMl
			brands[d.LiquorID] = liquor.Brand
		}
	}
	ids := make([]string, 0, len(sizes))
	for id := range sizes {
		ids = append(ids, id)
	}
	// Deterministic lock order across concurrent orders.
	sort.Strings(ids)

	var bill *entity.Bill
	err := uc.tx.RunSale(ctx, func(stocks repository.StockRepository, ledger repository.SaleRepository, bills repository.BillRepository) error {
		base := make(map[string]entity.StockRecord, len(ids))
		recIDs := make(map[string]string, len(ids))
		for _, id := range ids {
			rec, err := stocks.GetForUpdate(id, loc)
			if err != nil {
				return err
			}
			if rec == nil {
				rec = &entity.StockRecord{LiquorID: id, Location: loc}
			}
			base[id] = *rec
			recIDs[id] = rec.ID
		}

		var demands []stock.Demand
		for _, r := range resolved {
			demands = append(demands, r.demands...)
		}
		projected, err := stock.Project(base, sizes, demands)
		if err != nil {
			var short *domain.InsufficientStockError
			if errors.As(err, &short) {
				short.Brand = brands[short.LiquorID]
			}
			return err
		}

		now := time.Now()
		for _, id := range ids {
			rec := projected[id]
			if rec == base[id] {
				continue
			}
			rec.ID = recIDs[id]
			rec.UpdatedAt = now
			if err := stocks.Upsert(&rec); err != nil {
				return err
			}
		}

		bill = &entity.Bill{
			BillID:    newBillID(now),
			Timestamp: now,
			Actor:     actor,
		}
		for _, r := range resolved {
			if err := uc.appendLedgerLines(ledger, bill.BillID, loc, r, now, actor); err != nil {
				return err
			}
			bill.Items = append(bill.Items, toBillItem(r))
		}
		bill.Total = bill.ComputeTotal()
		return bills.Create(bill)
	})
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// appendLedgerLines writes the sale ledger rows for one resolved line. A
// cocktail becomes one row per ingredient so the ledger replays without the
// recipe; the drink price rides on the first ingredient row only.
func (uc *SaleUseCase) appendLedgerLines(ledger repository.SaleRepository, billID string, loc domain.Location, r *resolvedLine, at time.Time, actor string) error {
	switch r.kind {
	case entity.SaleKindBottle:
		return ledger.Create(&entity.SaleLine{
			ID:        uuid.New().String(),
			BillID:    billID,
			LiquorID:  r.liquor.ID,
			Location:  loc,
			Kind:      entity.SaleKindBottle,
			Quantity:  r.quantity,
			UnitPrice: r.unitPrice,
			Timestamp: at,
			Actor:     actor,
		})
	case entity.SaleKindPour:
		return ledger.Create(&entity.SaleLine{
			ID:         uuid.New().String(),
			BillID:     billID,
			LiquorID:   r.liquor.ID,
			Location:   loc,
			Kind:       entity.SaleKindPour,
			Quantity:   r.pourSizeMl * r.quantity,
			PourSizeMl: r.pourSizeMl,
			UnitPrice:  r.unitPrice,
			Timestamp:  at,
			Actor:      actor,
		})
	case entity.SaleKindCocktail:
		for i, ing := range r.cocktail.Ingredients {
			price := decimal.Zero
			if i == 0 {
				price = r.unitPrice
			}
			line := &entity.SaleLine{
				ID:         uuid.New().String(),
				BillID:     billID,
				LiquorID:   ing.LiquorID,
				CocktailID: r.cocktail.ID,
				Location:   loc,
				Kind:       entity.SaleKindCocktail,
				Quantity:   ing.VolumeMl * r.quantity,
				DrinkCount: r.quantity,
				UnitPrice:  price,
				Timestamp:  at,
				Actor:      actor,
			}
			if err := ledger.Create(line); err != nil {
				return err
			}
		}
		return nil
	default:
		return domain.ErrInvalidInput
	}
}

func toBillItem(r *resolvedLine) entity.BillItem {
	item := entity.BillItem{
		Kind:       r.kind,
		Quantity:   r.quantity,
		PourSizeMl: r.pourSizeMl,
		Price:      r.linePrice,
	}
	switch r.kind {
	case entity.SaleKindCocktail:
		item.Brand = r.cocktail.Name
		item.CocktailID = r.cocktail.ID
		item.Ingredients = append([]entity.Ingredient(nil), r.cocktail.Ingredients...)
	default:
		item.Brand = r.liquor.Brand
		item.LiquorID = r.liquor.ID
	}
	return item
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
