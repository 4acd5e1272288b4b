package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

type memLiquorRepo struct {
	items map[string]*entity.Liquor
}

func (r *memLiquorRepo) Create(l *entity.Liquor) error { r.items[l.ID] = l; return nil }
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
	return out, nil
}
func (r *memLiquorRepo) Update(l *entity.Liquor) error { r.items[l.ID] = l; return nil }
func (r *memLiquorRepo) Delete(id string) error        { delete(r.items, id); return nil }

type memCocktailRepo struct {
	items map[string]*entity.Cocktail
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
func (r *memStockRepo) ListByLocation(domain.Location) ([]*entity.StockRecord, error) {
	return nil, nil
}
func (r *memStockRepo) ListAll() ([]*entity.StockRecord, error) { return nil, nil }

func newCatalogSetup() (*LiquorUseCase, *CocktailUseCase, *memLiquorRepo, *memStockRepo) {
	liquors := &memLiquorRepo{items: make(map[string]*entity.Liquor)}
	cocktails := &memCocktailRepo{items: make(map[string]*entity.Cocktail)}
	stocks := &memStockRepo{items: make(map[stockKey]*entity.StockRecord)}
	return NewLiquorUseCase(liquors, stocks), NewCocktailUseCase(cocktails, liquors), liquors, stocks
}

func TestCreateLiquor_BooksInitialStockIntoWarehouse(t *testing.T) {
	liquorUC, _, _, stocks := newCatalogSetup()

	out, err := liquorUC.Create(context.Background(), dto.CreateLiquorRequest{
		Brand:          "Old Reserve",
		SizeMl:         750,
		Barcode:        "8901001",
		BottlePrice:    decimal.NewFromInt(4500),
		PourPrices:     map[int]decimal.Decimal{50: decimal.NewFromInt(350)},
		InitialBottles: 24,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	rec, err := stocks.Get(out.ID, domain.Warehouse)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 24, rec.Bottles)
	assert.Equal(t, 0, rec.OpenMl)

	bar, _ := stocks.Get(out.ID, domain.Bar)
	assert.Nil(t, bar, "initial stock goes to the warehouse only")
}

func TestCreateLiquor_DuplicateBarcode(t *testing.T) {
	liquorUC, _, _, _ := newCatalogSetup()
	req := dto.CreateLiquorRequest{Brand: "Old Reserve", SizeMl: 750, Barcode: "8901001"}

	_, err := liquorUC.Create(context.Background(), req)
	require.NoError(t, err)

	req.Brand = "Other Brand"
	_, err = liquorUC.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateLiquor_PourSizeBeyondBottleRejected(t *testing.T) {
	liquorUC, _, _, _ := newCatalogSetup()

	_, err := liquorUC.Create(context.Background(), dto.CreateLiquorRequest{
		Brand:   "Miniature Gin",
		SizeMl:  180,
		Barcode: "8901002",
		PourPrices: map[int]decimal.Decimal{
			180: decimal.NewFromInt(900),
			250: decimal.NewFromInt(1200), // larger than the bottle
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteLiquor_RemovesStockAtBothLocations(t *testing.T) {
	liquorUC, _, _, stocks := newCatalogSetup()

	out, err := liquorUC.Create(context.Background(), dto.CreateLiquorRequest{
		Brand: "Old Reserve", SizeMl: 750, Barcode: "8901001", InitialBottles: 5,
	})
	require.NoError(t, err)
	require.NoError(t, stocks.Upsert(&entity.StockRecord{ID: "r2", LiquorID: out.ID, Location: domain.Bar, Bottles: 1}))

	require.NoError(t, liquorUC.Delete(context.Background(), out.ID))
	wh, _ := stocks.Get(out.ID, domain.Warehouse)
	bar, _ := stocks.Get(out.ID, domain.Bar)
	assert.Nil(t, wh)
	assert.Nil(t, bar)
}

func TestCreateCocktail_DenormalizesIngredientBrands(t *testing.T) {
	liquorUC, cocktailUC, _, _ := newCatalogSetup()

	whisky, err := liquorUC.Create(context.Background(), dto.CreateLiquorRequest{
		Brand: "Old Reserve", SizeMl: 750, Barcode: "8901001",
	})
	require.NoError(t, err)

	out, err := cocktailUC.Create(context.Background(), dto.CreateCocktailRequest{
		Name:  "Whisky Sour",
		Price: decimal.NewFromInt(800),
		Ingredients: []dto.IngredientRequest{
			{LiquorID: whisky.ID, VolumeMl: 45},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Ingredients, 1)
	assert.Equal(t, "Old Reserve", out.Ingredients[0].Brand)
}

func TestCreateCocktail_UnknownIngredientRejected(t *testing.T) {
	_, cocktailUC, _, _ := newCatalogSetup()

	_, err := cocktailUC.Create(context.Background(), dto.CreateCocktailRequest{
		Name:  "Ghost Drink",
		Price: decimal.NewFromInt(500),
		Ingredients: []dto.IngredientRequest{
			{LiquorID: "missing", VolumeMl: 30},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCocktail_NoIngredientsRejected(t *testing.T) {
	_, cocktailUC, _, _ := newCatalogSetup()

	_, err := cocktailUC.Create(context.Background(), dto.CreateCocktailRequest{
		Name: "Empty Glass", Price: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
