package repository

import "github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"

// CocktailRepository is the port for cocktail recipes.
type CocktailRepository interface {
	Create(cocktail *entity.Cocktail) error
	GetByID(id string) (*entity.Cocktail, error)
	List() ([]*entity.Cocktail, error)
	Update(cocktail *entity.Cocktail) error
	Delete(id string) error
}
