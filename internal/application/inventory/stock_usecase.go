package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

// StockUseCase manages stock records directly: booking purchased bottles,
// administrative corrections, and the inventory listing.
type StockUseCase struct {
	liquorRepo repository.LiquorRepository
	stockRepo  repository.StockRepository
	tx         TxRunner
}

// NewStockUseCase builds the use case.
func NewStockUseCase(liquorRepo repository.LiquorRepository, stockRepo repository.StockRepository, tx TxRunner) *StockUseCase {
	return &StockUseCase{liquorRepo: liquorRepo, stockRepo: stockRepo, tx: tx}
}

// AddStock books sealed bottles into a location. The first addition for a
// (liquor, location) pair creates the record with zero open volume.
func (uc *StockUseCase) AddStock(ctx context.Context, in dto.AddStockRequest) (*dto.StockItemResponse, error) {
	if in.Bottles <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	loc := domain.Location(in.Location)
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	liquor, err := uc.liquorRepo.GetByID(in.LiquorID)
	if err != nil {
		return nil, err
	}
	if liquor == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.StockItemResponse
	err = uc.tx.RunStock(ctx, func(stocks repository.StockRepository, _ repository.TransferRepository) error {
		rec, err := stocks.GetForUpdate(in.LiquorID, loc)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &entity.StockRecord{
				ID:       uuid.New().String(),
				LiquorID: in.LiquorID,
				Location: loc,
			}
		}
		rec.Bottles += in.Bottles
		rec.UpdatedAt = time.Now()
		if err := stocks.Upsert(rec); err != nil {
			return err
		}
		out = toStockItem(rec, liquor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStock sets a record's counts directly. Administrative correction; the
// sale and transfer logs are untouched, so reconstructions over the edit will
// not line up with it.
func (uc *StockUseCase) UpdateStock(ctx context.Context, liquorID string, location int, in dto.UpdateStockRequest) (*dto.StockItemResponse, error) {
	loc := domain.Location(location)
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Bottles < 0 || in.OpenMl < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	liquor, err := uc.liquorRepo.GetByID(liquorID)
	if err != nil {
		return nil, err
	}
	if liquor == nil {
		return nil, domain.ErrNotFound
	}
	if in.OpenMl >= liquor.SizeMl {
		return nil, domain.ErrInvalidQuantity
	}

	var out *dto.StockItemResponse
	err = uc.tx.RunStock(ctx, func(stocks repository.StockRepository, _ repository.TransferRepository) error {
		rec, err := stocks.GetForUpdate(liquorID, loc)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		rec.Bottles = in.Bottles
		rec.OpenMl = in.OpenMl
		rec.UpdatedAt = time.Now()
		if err := stocks.Upsert(rec); err != nil {
			return err
		}
		out = toStockItem(rec, liquor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteStock removes one stock record.
func (uc *StockUseCase) DeleteStock(ctx context.Context, liquorID string, location int) error {
	loc := domain.Location(location)
	if !loc.Valid() {
		return domain.ErrInvalidInput
	}
	rec, err := uc.stockRepo.Get(liquorID, loc)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return uc.stockRepo.Delete(liquorID, loc)
}

// ListInventory returns stock records joined with their catalog entries,
// either for one location or for both.
func (uc *StockUseCase) ListInventory(ctx context.Context, location int) ([]*dto.StockItemResponse, error) {
	var (
		recs []*entity.StockRecord
		err  error
	)
	if location == 0 {
		recs, err = uc.stockRepo.ListAll()
	} else {
		loc := domain.Location(location)
		if !loc.Valid() {
			return nil, domain.ErrInvalidInput
		}
		recs, err = uc.stockRepo.ListByLocation(loc)
	}
	if err != nil {
		return nil, err
	}

	liquors, err := uc.liquorRepo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Liquor, len(liquors))
	for _, l := range liquors {
		byID[l.ID] = l
	}

	out := make([]*dto.StockItemResponse, 0, len(recs))
	for _, rec := range recs {
		liquor, ok := byID[rec.LiquorID]
		if !ok {
			continue // catalog entry deleted out from under the record
		}
		out = append(out, toStockItem(rec, liquor))
	}
	return out, nil
}

func toStockItem(rec *entity.StockRecord, liquor *entity.Liquor) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		LiquorID: rec.LiquorID,
		Brand:    liquor.Brand,
		SizeMl:   liquor.SizeMl,
		Location: int(rec.Location),
		Bottles:  rec.Bottles,
		OpenMl:   rec.OpenMl,
	}
}
