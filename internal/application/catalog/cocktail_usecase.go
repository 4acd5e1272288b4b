package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// CocktailUseCase catalog CRUD for cocktail recipes. Every ingredient must
// reference an existing liquor; the recipe itself never holds stock.
type CocktailUseCase struct {
	cocktailRepo repository.CocktailRepository
	liquorRepo   repository.LiquorRepository
}

// NewCocktailUseCase builds the use case.
func NewCocktailUseCase(cocktailRepo repository.CocktailRepository, liquorRepo repository.LiquorRepository) *CocktailUseCase {
	return &CocktailUseCase{cocktailRepo: cocktailRepo, liquorRepo: liquorRepo}
}

// Create validates and stores a new recipe.
func (uc *CocktailUseCase) Create(ctx context.Context, in dto.CreateCocktailRequest) (*dto.CocktailResponse, error) {
	ingredients, err := uc.resolveIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	cocktail := &entity.Cocktail{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Barcode:     in.Barcode,
		Price:       in.Price,
		Ingredients: ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := cocktail.Validate(); err != nil {
		return nil, err
	}
	if err := uc.cocktailRepo.Create(cocktail); err != nil {
		return nil, err
	}
	return toCocktailResponse(cocktail), nil
}

// GetByID returns one recipe.
func (uc *CocktailUseCase) GetByID(ctx context.Context, id string) (*dto.CocktailResponse, error) {
	cocktail, err := uc.cocktailRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cocktail == nil {
		return nil, domain.ErrNotFound
	}
	return toCocktailResponse(cocktail), nil
}

// List returns every recipe.
func (uc *CocktailUseCase) List(ctx context.Context) ([]*dto.CocktailResponse, error) {
	cocktails, err := uc.cocktailRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CocktailResponse, 0, len(cocktails))
	for _, c := range cocktails {
		out = append(out, toCocktailResponse(c))
	}
	return out, nil
}

// Update replaces a recipe. Past sale lines carry their consumed volumes, so
// editing the recipe never rewrites history.
func (uc *CocktailUseCase) Update(ctx context.Context, id string, in dto.CreateCocktailRequest) (*dto.CocktailResponse, error) {
	cocktail, err := uc.cocktailRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cocktail == nil {
		return nil, domain.ErrNotFound
	}
	ingredients, err := uc.resolveIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}
	cocktail.Name = in.Name
	cocktail.Barcode = in.Barcode
	cocktail.Price = in.Price
	cocktail.Ingredients = ingredients
	cocktail.UpdatedAt = time.Now()
	if err := cocktail.Validate(); err != nil {
		return nil, err
	}
	if err := uc.cocktailRepo.Update(cocktail); err != nil {
		return nil, err
	}
	return toCocktailResponse(cocktail), nil
}

// Delete removes a recipe.
func (uc *CocktailUseCase) Delete(ctx context.Context, id string) error {
	cocktail, err := uc.cocktailRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cocktail == nil {
		return domain.ErrNotFound
	}
	return uc.cocktailRepo.Delete(id)
}

func (uc *CocktailUseCase) resolveIngredients(reqs []dto.IngredientRequest) ([]entity.Ingredient, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ingredients := make([]entity.Ingredient, 0, len(reqs))
	for _, r := range reqs {
		liquor, err := uc.liquorRepo.GetByID(r.LiquorID)
		if err != nil {
			return nil, err
		}
		if liquor == nil {
			return nil, domain.ErrNotFound
		}
		ingredients = append(ingredients, entity.Ingredient{
			LiquorID: liquor.ID,
			Brand:    liquor.Brand,
			VolumeMl: r.VolumeMl,
		})
	}
	return ingredients, nil
}

func toCocktailResponse(c *entity.Cocktail) *dto.CocktailResponse {
	resp := &dto.CocktailResponse{
		ID:      c.ID,
		Name:    c.Name,
		Barcode: c.Barcode,
		Price:   c.Price,
	}
	for _, ing := range c.Ingredients {
		resp.Ingredients = append(resp.Ingredients, dto.IngredientResponse{
			LiquorID: ing.LiquorID,
			Brand:    ing.Brand,
			VolumeMl: ing.VolumeMl,
		})
	}
	return resp
}
