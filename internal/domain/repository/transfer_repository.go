package repository

import (
	"time"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// TransferRepository is the port for the transfer log.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	ListBetween(from, to time.Time) ([]*entity.Transfer, error)
	ListAll(limit, offset int) ([]*entity.Transfer, error)
	Delete(id string) error
}
