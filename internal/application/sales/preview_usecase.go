package sales

import (
	"context"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/stock"
)

// PreviewAvailability answers, without committing anything, how many more
// units of each candidate line still fit after the staged lines are accounted
// for. It reads the current records, projects the full staged order onto a
// copy (a fresh recomputation on every call, never an incremental patch) and
// counts additional units per candidate against that shadow state.
func (uc *SaleUseCase) PreviewAvailability(ctx context.Context, in dto.PreviewRequest) (*dto.PreviewResponse, error) {
	loc := domain.Location(in.Location)
	if !loc.Valid() {
		return nil, domain.ErrInvalidInput
	}

	staged := make([]stock.Demand, 0, len(in.Staged))
	perUnit := make([][]stock.Demand, 0, len(in.Candidates))
	needed := make(map[string]struct{})
	for _, line := range in.Staged {
		r, err := uc.resolveLine(line)
		if err != nil {
			return nil, err
		}
		staged = append(staged, r.demands...)
		for _, d := range r.demands {
			needed[d.LiquorID] = struct{}{}
		}
	}
	for _, line := range in.Candidates {
		one := line
		one.Quantity = 1
		r, err := uc.resolveLine(one)
		if err != nil {
			return nil, err
		}
		perUnit = append(perUnit, r.demands)
		for _, d := range r.demands {
			needed[d.LiquorID] = struct{}{}
		}
	}

	base := make(map[string]entity.StockRecord, len(needed))
	sizes := make(map[string]int, len(needed))
	for id := range needed {
		liquor, err := uc.mustLiquor(id)
		if err != nil {
			return nil, err
		}
		sizes[id] = liquor.SizeMl
		rec, err := uc.stockRepo.Get(id, loc)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			rec = &entity.StockRecord{LiquorID: id, Location: loc}
		}
		base[id] = *rec
	}

	projected, err := stock.Project(base, sizes, staged)
	if err != nil {
		// The staged order itself no longer fits; report zero headroom for
		// every candidate rather than failing the preview.
		projected = nil
	}

	resp := &dto.PreviewResponse{}
	for i, line := range in.Candidates {
		max := 0
		if projected != nil {
			if len(perUnit[i]) == 1 {
				max, err = stock.MaxAdditionalUnits(projected, sizes, perUnit[i][0])
			} else {
				max, err = stock.MaxAdditionalDrinks(projected, sizes, perUnit[i])
			}
			if err != nil {
				return nil, err
			}
		}
		resp.Candidates = append(resp.Candidates, dto.PreviewCandidateResponse{
			Line:               line,
			MaxAdditionalUnits: max,
		})
	}
	return resp, nil
}
