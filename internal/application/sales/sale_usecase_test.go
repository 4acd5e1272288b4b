package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

func newTestSetup(liquors []*entity.Liquor, cocktails []*entity.Cocktail, recs []*entity.StockRecord) (*SaleUseCase, *memStockRepo, *memSaleRepo, *memBillRepo) {
	stocks := newMemStockRepo(recs...)
	ledger := &memSaleRepo{}
	bills := &memBillRepo{}
	uc := NewSaleUseCase(
		newMemLiquorRepo(liquors...),
		newMemCocktailRepo(cocktails...),
		stocks,
		ledger,
		&memTx{stocks: stocks, ledger: ledger, bills: bills},
	)
	return uc, stocks, ledger, bills
}

func testWhisky() *entity.Liquor {
	return &entity.Liquor{
		ID:          "whisky-1",
		Brand:       "Old Reserve",
		SizeMl:      750,
		Barcode:     "8901001",
		BottlePrice: decimal.NewFromInt(4500),
		PourPrices: map[int]decimal.Decimal{
			25:  decimal.NewFromInt(180),
			50:  decimal.NewFromInt(350),
			100: decimal.NewFromInt(650),
		},
	}
}

func TestSellPour_DepletesAndWritesLedgerAndBill(t *testing.T) {
	whisky := testWhisky()
	uc, stocks, ledger, bills := newTestSetup(
		[]*entity.Liquor{whisky}, nil,
		[]*entity.StockRecord{{ID: "r1", LiquorID: whisky.ID, Location: domain.Bar, Bottles: 3, OpenMl: 100}},
	)

	bill, err := uc.SellPour(context.Background(), dto.SellPourRequest{
		LiquorID: whisky.ID, Location: int(domain.Bar), PourSizeMl: 50, Quantity: 3,
	}, "kasun")
	require.NoError(t, err)
	require.Len(t, bill.Items, 1)
	assert.Equal(t, "350", bill.Items[0].Price.Div(decimal.NewFromInt(3)).String(), "line price must be 3x the 50ml pour price")
	assert.Equal(t, "1050", bill.Total.String())

	// 150ml poured: 100 from the open bottle, then one sealed bottle cracked.
	rec, err := stocks.Get(whisky.ID, domain.Bar)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Bottles)
	assert.Equal(t, 700, rec.OpenMl)

	lines, err := ledger.ListByBill(bill.BillID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, entity.SaleKindPour, lines[0].Kind)
	assert.Equal(t, 150, lines[0].Quantity, "pour lines record milliliters")
	assert.Equal(t, 50, lines[0].PourSizeMl)
	assert.Equal(t, "kasun", lines[0].Actor)

	stored, err := bills.GetByID(bill.BillID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(1050)))
}

func TestSellPour_UnpricedSizeRejected(t *testing.T) {
	whisky := testWhisky()
	uc, _, _, _ := newTestSetup(
		[]*entity.Liquor{whisky}, nil,
		[]*entity.StockRecord{{ID: "r1", LiquorID: whisky.ID, Location: domain.Bar, Bottles: 3}},
	)

	_, err := uc.SellPour(context.Background(), dto.SellPourRequest{
		LiquorID: whisky.ID, Location: int(domain.Bar), PourSizeMl: 60, Quantity: 1,
	}, "kasun")
	assert.ErrorIs(t, err, domain.ErrNotFound, "60ml has no configured price")
}

func TestSellBottle_InsufficientLeavesStateUntouched(t *testing.T) {
	whisky := testWhisky()
	uc, stocks, ledger, bills := newTestSetup(
		[]*entity.Liquor{whisky}, nil,
		[]*entity.StockRecord{{ID: "r1", LiquorID: whisky.ID, Location: domain.Warehouse, Bottles: 2}},
	)

	_, err := uc.SellBottle(context.Background(), dto.SellBottleRequest{
		LiquorID: whisky.ID, Location: int(domain.Warehouse), Quantity: 5,
	}, "kasun")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var short *domain.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 3, short.ShortfallBottles)
	assert.Equal(t, "Old Reserve", short.Brand)

	rec, _ := stocks.Get(whisky.ID, domain.Warehouse)
	assert.Equal(t, 2, rec.Bottles, "failed sale must not deplete stock")
	assert.Empty(t, ledger.lines)
	assert.Empty(t, bills.bills)
}

func TestSellCocktail_OneLedgerLinePerIngredient(t *testing.T) {
	whisky := testWhisky()
	rum := &entity.Liquor{
		ID: "rum-1", Brand: "White Rum", SizeMl: 750, Barcode: "8901002",
		BottlePrice: decimal.NewFromInt(3200),
	}
	mojito := &entity.Cocktail{
		ID: "mojito-1", Name: "Whisky Mojito", Price: decimal.NewFromInt(900),
		Ingredients: []entity.Ingredient{
			{LiquorID: whisky.ID, Brand: whisky.Brand, VolumeMl: 30},
			{LiquorID: rum.ID, Brand: rum.Brand, VolumeMl: 45},
		},
	}
	uc, stocks, ledger, _ := newTestSetup(
		[]*entity.Liquor{whisky, rum},
		[]*entity.Cocktail{mojito},
		[]*entity.StockRecord{
			{ID: "r1", LiquorID: whisky.ID, Location: domain.Bar, Bottles: 1},
			{ID: "r2", LiquorID: rum.ID, Location: domain.Bar, Bottles: 1},
		},
	)

	bill, err := uc.SellCocktail(context.Background(), dto.SellCocktailRequest{
		CocktailID: mojito.ID, Location: int(domain.Bar), Quantity: 2,
	}, "kasun")
	require.NoError(t, err)
	assert.True(t, bill.Total.Equal(decimal.NewFromInt(1800)))

	lines, err := ledger.ListByBill(bill.BillID)
	require.NoError(t, err)
	require.Len(t, lines, 2, "one ledger line per ingredient")
	priced := 0
	for _, l := range lines {
		assert.Equal(t, entity.SaleKindCocktail, l.Kind)
		assert.Equal(t, mojito.ID, l.CocktailID)
		assert.Equal(t, 2, l.DrinkCount)
		if !l.UnitPrice.IsZero() {
			priced++
		}
	}
	assert.Equal(t, 1, priced, "drink price rides on exactly one ingredient line")

	whiskyRec, _ := stocks.Get(whisky.ID, domain.Bar)
	assert.Equal(t, 0, whiskyRec.Bottles)
	assert.Equal(t, 690, whiskyRec.OpenMl, "2x30ml out of a cracked 750")
	rumRec, _ := stocks.Get(rum.ID, domain.Bar)
	assert.Equal(t, 660, rumRec.OpenMl)
}

func TestSellCocktail_OneIngredientShortAbortsAll(t *testing.T) {
	whisky := testWhisky()
	rum := &entity.Liquor{ID: "rum-1", Brand: "White Rum", SizeMl: 750, Barcode: "8901002"}
	mojito := &entity.Cocktail{
		ID: "mojito-1", Name: "Whisky Mojito", Price: decimal.NewFromInt(900),
		Ingredients: []entity.Ingredient{
			{LiquorID: whisky.ID, Brand: whisky.Brand, VolumeMl: 30},
			{LiquorID: rum.ID, Brand: rum.Brand, VolumeMl: 45},
		},
	}
	uc, stocks, ledger, _ := newTestSetup(
		[]*entity.Liquor{whisky, rum},
		[]*entity.Cocktail{mojito},
		[]*entity.StockRecord{
			{ID: "r1", LiquorID: whisky.ID, Location: domain.Bar, Bottles: 2},
			{ID: "r2", LiquorID: rum.ID, Location: domain.Bar, OpenMl: 40},
		},
	)

	_, err := uc.SellCocktail(context.Background(), dto.SellCocktailRequest{
		CocktailID: mojito.ID, Location: int(domain.Bar), Quantity: 1,
	}, "kasun")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var short *domain.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, rum.ID, short.LiquorID)
	assert.Equal(t, 5, short.ShortfallMl)

	whiskyRec, _ := stocks.Get(whisky.ID, domain.Bar)
	assert.Equal(t, 2, whiskyRec.Bottles, "sibling ingredient must not be depleted")
	assert.Equal(t, 0, whiskyRec.OpenMl)
	assert.Empty(t, ledger.lines)
}

func TestCommitOrder_MultiLineAtomic(t *testing.T) {
	whisky := testWhisky()
	uc, stocks, _, bills := newTestSetup(
		[]*entity.Liquor{whisky}, nil,
		[]*entity.StockRecord{{ID: "r1", LiquorID: whisky.ID, Location: domain.Bar, Bottles: 2, OpenMl: 0}},
	)

	// 1 bottle + 4x100ml pours = 750 + 400 = 1150ml of the available 1500.
	bill, err := uc.CommitOrder(context.Background(), int(domain.Bar), []dto.OrderLine{
		{Kind: entity.SaleKindBottle, LiquorID: whisky.ID, Quantity: 1},
		{Kind: entity.SaleKindPour, LiquorID: whisky.ID, PourSizeMl: 100, Quantity: 4},
	}, "kasun")
	require.NoError(t, err)
	require.Len(t, bill.Items, 2)
	assert.True(t, bill.Total.Equal(decimal.NewFromInt(4500+4*650)))

	rec, _ := stocks.Get(whisky.ID, domain.Bar)
	assert.Equal(t, 0, rec.Bottles)
	assert.Equal(t, 350, rec.OpenMl)

	stored, _ := bills.GetByID(bill.BillID)
	require.NotNil(t, stored)
	require.Len(t, stored.Items, 2)
}

func TestCommitOrder_SecondLineShortRollsBackFirst(t *testing.T) {
	whisky := testWhisky()
	uc, stocks, ledger, bills := newTestSetup(
		[]*entity.Liquor{whisky}, nil,
		[]*entity.StockRecord{{ID: "r1", LiquorID: whisky.ID, Location: domain.Bar, Bottles: 1}},
	)

	_, err := uc.CommitOrder(context.Background(), int(domain.Bar), []dto.OrderLine{
		{Kind: entity.SaleKindPour, LiquorID: whisky.ID, PourSizeMl: 100, Quantity: 7},
		{Kind: entity.SaleKindBottle, LiquorID: whisky.ID, Quantity: 1},
	}, "kasun")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	rec, _ := stocks.Get(whisky.ID, domain.Bar)
	assert.Equal(t, 1, rec.Bottles, "partial order must not commit")
	assert.Equal(t, 0, rec.OpenMl)
	assert.Empty(t, ledger.lines)
	assert.Empty(t, bills.bills)
}

func TestCommitOrder_Validation(t *testing.T) {
	whisky := testWhisky()
	uc, _, _, _ := newTestSetup([]*entity.Liquor{whisky}, nil, nil)
	ctx := context.Background()

	_, err := uc.CommitOrder(ctx, 7, []dto.OrderLine{{Kind: entity.SaleKindBottle, LiquorID: whisky.ID, Quantity: 1}}, "kasun")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown location")

	_, err = uc.CommitOrder(ctx, int(domain.Bar), nil, "kasun")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty order")

	_, err = uc.CommitOrder(ctx, int(domain.Bar), []dto.OrderLine{{Kind: entity.SaleKindBottle, LiquorID: whisky.ID, Quantity: 0}}, "kasun")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.CommitOrder(ctx, int(domain.Bar), []dto.OrderLine{{Kind: "food", Quantity: 1}}, "kasun")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CommitOrder(ctx, int(domain.Bar), []dto.OrderLine{{Kind: entity.SaleKindBottle, LiquorID: "ghost", Quantity: 1}}, "kasun")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestNewBillID_Format(t *testing.T) {
	id := newBillID(mustParse(t, "2026-03-15T18:30:05"))
	assert.Regexp(t, `^20260315-183005-[0-9a-f]{8}$`, id)
}
