package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/stock"
)

// TransferUseCase moves sealed bottles from the warehouse to the bar. Debit,
// credit and log entry commit in one transaction, so a transfer is never half
// applied.
type TransferUseCase struct {
	liquorRepo   repository.LiquorRepository
	transferRepo repository.TransferRepository
	tx           TxRunner
}

// NewTransferUseCase builds the use case.
func NewTransferUseCase(liquorRepo repository.LiquorRepository, transferRepo repository.TransferRepository, tx TxRunner) *TransferUseCase {
	return &TransferUseCase{liquorRepo: liquorRepo, transferRepo: transferRepo, tx: tx}
}

// Transfer moves whole bottles warehouse -> bar. Open volume never travels.
func (uc *TransferUseCase) Transfer(ctx context.Context, in dto.TransferRequest, actor string) (*dto.TransferResponse, error) {
	if in.Bottles <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	liquor, err := uc.liquorRepo.GetByID(in.LiquorID)
	if err != nil {
		return nil, err
	}
	if liquor == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.TransferResponse
	err = uc.tx.RunStock(ctx, func(stocks repository.StockRepository, transfers repository.TransferRepository) error {
		src, err := stocks.GetForUpdate(in.LiquorID, domain.Warehouse)
		if err != nil {
			return err
		}
		if src == nil {
			return &domain.InsufficientStockError{
				LiquorID:         in.LiquorID,
				Brand:            liquor.Brand,
				ShortfallBottles: in.Bottles,
			}
		}
		debited, err := stock.ConsumeBottles(*src, in.Bottles)
		if err != nil {
			return err
		}
		dst, err := stocks.GetForUpdate(in.LiquorID, domain.Bar)
		if err != nil {
			return err
		}
		if dst == nil {
			dst = &entity.StockRecord{
				ID:       uuid.New().String(),
				LiquorID: in.LiquorID,
				Location: domain.Bar,
			}
		}
		now := time.Now()
		debited.UpdatedAt = now
		dst.Bottles += in.Bottles
		dst.UpdatedAt = now
		if err := stocks.Upsert(&debited); err != nil {
			return err
		}
		if err := stocks.Upsert(dst); err != nil {
			return err
		}
		transfer := &entity.Transfer{
			ID:        uuid.New().String(),
			LiquorID:  in.LiquorID,
			From:      domain.Warehouse,
			To:        domain.Bar,
			Bottles:   in.Bottles,
			Timestamp: now,
			Actor:     actor,
		}
		if err := transfers.Create(transfer); err != nil {
			return err
		}
		out = toTransferResponse(transfer, liquor.Brand)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListTransfers returns the transfer log, newest first.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, page dto.PageRequest) ([]*dto.TransferResponse, error) {
	page.DefaultPage()
	transfers, err := uc.transferRepo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	liquors, err := uc.liquorRepo.List()
	if err != nil {
		return nil, err
	}
	brands := make(map[string]string, len(liquors))
	for _, l := range liquors {
		brands[l.ID] = l.Brand
	}
	out := make([]*dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, toTransferResponse(t, brands[t.LiquorID]))
	}
	return out, nil
}

// DeleteTransfer hard-removes a transfer log row. Administrative correction
// only; stock is not moved back, and reconstructions over the period will no
// longer see the movement.
func (uc *TransferUseCase) DeleteTransfer(ctx context.Context, id string) error {
	t, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.transferRepo.Delete(id)
}

func toTransferResponse(t *entity.Transfer, brand string) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:        t.ID,
		LiquorID:  t.LiquorID,
		Brand:     brand,
		From:      int(t.From),
		To:        int(t.To),
		Bottles:   t.Bottles,
		Timestamp: t.Timestamp.Format(time.RFC3339),
		Actor:     t.Actor,
	}
}
