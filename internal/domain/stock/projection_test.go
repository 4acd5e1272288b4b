package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/stock"
)

func barStock(liquorID string, bottles, openMl int) entity.StockRecord {
	return entity.StockRecord{LiquorID: liquorID, Location: domain.Bar, Bottles: bottles, OpenMl: openMl}
}

func TestProject_AppliesStagedLinesWithoutMutatingBase(t *testing.T) {
	base := map[string]entity.StockRecord{
		"gin":  barStock("gin", 2, 100),
		"arak": barStock("arak", 1, 0),
	}
	sizes := map[string]int{"gin": 750, "arak": 750}
	staged := []stock.Demand{
		{LiquorID: "gin", VolumeMl: 200},
		{LiquorID: "arak", Bottles: 1},
	}

	projected, err := stock.Project(base, sizes, staged)
	require.NoError(t, err)

	assert.Equal(t, 1, projected["gin"].Bottles)
	assert.Equal(t, 650, projected["gin"].OpenMl)
	assert.Equal(t, 0, projected["arak"].Bottles)

	// The authoritative records must be untouched.
	assert.Equal(t, 2, base["gin"].Bottles)
	assert.Equal(t, 100, base["gin"].OpenMl)
	assert.Equal(t, 1, base["arak"].Bottles)
}

func TestProject_IdempotentRecomputation(t *testing.T) {
	base := map[string]entity.StockRecord{"gin": barStock("gin", 3, 0)}
	sizes := map[string]int{"gin": 750}
	staged := []stock.Demand{{LiquorID: "gin", VolumeMl: 100}, {LiquorID: "gin", VolumeMl: 100}}

	first, err := stock.Project(base, sizes, staged)
	require.NoError(t, err)
	second, err := stock.Project(base, sizes, staged)
	require.NoError(t, err)

	assert.Equal(t, first, second, "recomputing from the same base and staged lines must agree")
}

func TestProject_FailsWhenStagedLinesExceedStock(t *testing.T) {
	base := map[string]entity.StockRecord{"gin": barStock("gin", 1, 0)}
	sizes := map[string]int{"gin": 750}
	staged := []stock.Demand{
		{LiquorID: "gin", VolumeMl: 700},
		{LiquorID: "gin", VolumeMl: 100},
	}

	_, err := stock.Project(base, sizes, staged)
	var short *domain.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "gin", short.LiquorID)
	assert.Equal(t, 50, short.ShortfallMl)
}

func TestMaxAdditionalUnits_Pours(t *testing.T) {
	projected := map[string]entity.StockRecord{"gin": barStock("gin", 2, 100)}
	sizes := map[string]int{"gin": 750}

	// 1600 ml available; 180 ml pours fit 8 times (1440), not 9.
	n, err := stock.MaxAdditionalUnits(projected, sizes, stock.Demand{LiquorID: "gin", VolumeMl: 180})
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestMaxAdditionalUnits_Bottles(t *testing.T) {
	projected := map[string]entity.StockRecord{"gin": barStock("gin", 5, 320)}
	sizes := map[string]int{"gin": 750}

	n, err := stock.MaxAdditionalUnits(projected, sizes, stock.Demand{LiquorID: "gin", Bottles: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, n, "open volume never counts towards sealed-bottle sales")
}

func TestMaxAdditionalUnits_UnknownLiquorHasZeroStock(t *testing.T) {
	n, err := stock.MaxAdditionalUnits(map[string]entity.StockRecord{}, map[string]int{"gin": 750},
		stock.Demand{LiquorID: "gin", VolumeMl: 50})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMaxAdditionalDrinks_BoundByScarcestIngredient(t *testing.T) {
	projected := map[string]entity.StockRecord{
		"gin":      barStock("gin", 1, 0),   // 750 ml
		"vermouth": barStock("vermouth", 0, 90), // 90 ml
	}
	sizes := map[string]int{"gin": 750, "vermouth": 1000}
	perDrink := []stock.Demand{
		{LiquorID: "gin", VolumeMl: 60},
		{LiquorID: "vermouth", VolumeMl: 30},
	}

	n, err := stock.MaxAdditionalDrinks(projected, sizes, perDrink)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "vermouth runs out after three drinks even though gin has plenty")
}
