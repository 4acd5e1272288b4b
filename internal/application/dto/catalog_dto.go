package dto

import "github.com/shopspring/decimal"

// CreateLiquorRequest payload to add a liquor to the catalog. PourPrices maps
// pour size in ml to price; every size must fit inside one bottle.
type CreateLiquorRequest struct {
	Brand       string                  `json:"brand"`
	SizeMl      int                     `json:"sizeMl"`
	Barcode     string                  `json:"barcode"`
	BottlePrice decimal.Decimal         `json:"bottlePrice"`
	PourPrices  map[int]decimal.Decimal `json:"pourPrices"`
	// Optional opening stock, booked into the warehouse on creation.
	InitialBottles int `json:"initialBottles"`
}

// UpdateLiquorRequest payload to edit a catalog entry. Historical bills keep
// their frozen snapshots regardless.
type UpdateLiquorRequest struct {
	Brand       string                  `json:"brand"`
	SizeMl      int                     `json:"sizeMl"`
	Barcode     string                  `json:"barcode"`
	BottlePrice decimal.Decimal         `json:"bottlePrice"`
	PourPrices  map[int]decimal.Decimal `json:"pourPrices"`
}

// LiquorResponse catalog entry as returned to clients.
type LiquorResponse struct {
	ID          string                  `json:"id"`
	Brand       string                  `json:"brand"`
	SizeMl      int                     `json:"sizeMl"`
	Barcode     string                  `json:"barcode"`
	BottlePrice decimal.Decimal         `json:"bottlePrice"`
	PourPrices  map[int]decimal.Decimal `json:"pourPrices"`
}

// IngredientRequest one recipe line in a cocktail payload.
type IngredientRequest struct {
	LiquorID string `json:"liquorId"`
	VolumeMl int    `json:"volumeMl"`
}

// CreateCocktailRequest payload to create or replace a cocktail recipe.
type CreateCocktailRequest struct {
	Name        string              `json:"name"`
	Barcode     string              `json:"barcode"`
	Price       decimal.Decimal     `json:"price"`
	Ingredients []IngredientRequest `json:"ingredients"`
}

// IngredientResponse recipe line with the denormalized brand.
type IngredientResponse struct {
	LiquorID string `json:"liquorId"`
	Brand    string `json:"brand"`
	VolumeMl int    `json:"volumeMl"`
}

// CocktailResponse recipe as returned to clients.
type CocktailResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Barcode     string               `json:"barcode"`
	Price       decimal.Decimal      `json:"price"`
	Ingredients []IngredientResponse `json:"ingredients"`
}
