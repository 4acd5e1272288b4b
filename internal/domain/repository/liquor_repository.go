package repository

import "github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"

// LiquorRepository is the port for the liquor catalog.
type LiquorRepository interface {
	Create(liquor *entity.Liquor) error
	GetByID(id string) (*entity.Liquor, error)
	GetByBarcode(barcode string) (*entity.Liquor, error)
	List() ([]*entity.Liquor, error)
	Update(liquor *entity.Liquor) error
	Delete(id string) error
}
