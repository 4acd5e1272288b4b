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

// LiquorUseCase catalog CRUD for liquors. Creation can book opening stock into
// the warehouse in the same call.
type LiquorUseCase struct {
	liquorRepo repository.LiquorRepository
	stockRepo  repository.StockRepository
}

// NewLiquorUseCase builds the use case.
func NewLiquorUseCase(liquorRepo repository.LiquorRepository, stockRepo repository.StockRepository) *LiquorUseCase {
	return &LiquorUseCase{liquorRepo: liquorRepo, stockRepo: stockRepo}
}

// Create validates and stores a new liquor; barcode must be unique. If
// InitialBottles > 0 the warehouse stock record is created with it.
func (uc *LiquorUseCase) Create(ctx context.Context, in dto.CreateLiquorRequest) (*dto.LiquorResponse, error) {
	if in.InitialBottles < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now()
	liquor := &entity.Liquor{
		ID:          uuid.New().String(),
		Brand:       in.Brand,
		SizeMl:      in.SizeMl,
		Barcode:     in.Barcode,
		BottlePrice: in.BottlePrice,
		PourPrices:  in.PourPrices,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := liquor.Validate(); err != nil {
		return nil, err
	}
	if existing, err := uc.liquorRepo.GetByBarcode(in.Barcode); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.liquorRepo.Create(liquor); err != nil {
		return nil, err
	}
	if in.InitialBottles > 0 {
		rec := &entity.StockRecord{
			ID:        uuid.New().String(),
			LiquorID:  liquor.ID,
			Location:  domain.Warehouse,
			Bottles:   in.InitialBottles,
			UpdatedAt: now,
		}
		if err := uc.stockRepo.Upsert(rec); err != nil {
			return nil, err
		}
	}
	return toLiquorResponse(liquor), nil
}

// GetByID returns one catalog entry.
func (uc *LiquorUseCase) GetByID(ctx context.Context, id string) (*dto.LiquorResponse, error) {
	liquor, err := uc.liquorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if liquor == nil {
		return nil, domain.ErrNotFound
	}
	return toLiquorResponse(liquor), nil
}

// List returns the whole liquor catalog.
func (uc *LiquorUseCase) List(ctx context.Context) ([]*dto.LiquorResponse, error) {
	liquors, err := uc.liquorRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LiquorResponse, 0, len(liquors))
	for _, l := range liquors {
		out = append(out, toLiquorResponse(l))
	}
	return out, nil
}

// Update edits a catalog entry. Stock records and historical bills are not
// touched.
func (uc *LiquorUseCase) Update(ctx context.Context, id string, in dto.UpdateLiquorRequest) (*dto.LiquorResponse, error) {
	liquor, err := uc.liquorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if liquor == nil {
		return nil, domain.ErrNotFound
	}
	liquor.Brand = in.Brand
	liquor.SizeMl = in.SizeMl
	liquor.Barcode = in.Barcode
	liquor.BottlePrice = in.BottlePrice
	liquor.PourPrices = in.PourPrices
	liquor.UpdatedAt = time.Now()
	if err := liquor.Validate(); err != nil {
		return nil, err
	}
	if err := uc.liquorRepo.Update(liquor); err != nil {
		return nil, err
	}
	return toLiquorResponse(liquor), nil
}

// Delete removes a catalog entry and its stock records at both locations.
func (uc *LiquorUseCase) Delete(ctx context.Context, id string) error {
	liquor, err := uc.liquorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if liquor == nil {
		return domain.ErrNotFound
	}
	for _, loc := range []domain.Location{domain.Warehouse, domain.Bar} {
		if err := uc.stockRepo.Delete(id, loc); err != nil {
			return err
		}
	}
	return uc.liquorRepo.Delete(id)
}

func toLiquorResponse(l *entity.Liquor) *dto.LiquorResponse {
	return &dto.LiquorResponse{
		ID:          l.ID,
		Brand:       l.Brand,
		SizeMl:      l.SizeMl,
		Barcode:     l.Barcode,
		BottlePrice: l.BottlePrice,
		PourPrices:  l.PourPrices,
	}
}
