package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/stock"
	"github.com/shopspring/decimal"
)

const dayFormat = "2006-01-02"

// ReportUseCase builds historical reports. Daily stock boundaries come from
// the reverse reconstruction over the event logs, never from stored
// snapshots; monthly income comes from the frozen bill documents.
type ReportUseCase struct {
	liquorRepo repository.LiquorRepository
	billRepo   repository.BillRepository
	tx         TxRunner
	tz         *time.Location
	log        zerolog.Logger
}

// NewReportUseCase builds the use case. tz is the business day boundary
// timezone; nil means the server's local zone.
func NewReportUseCase(
	liquorRepo repository.LiquorRepository,
	billRepo repository.BillRepository,
	tx TxRunner,
	tz *time.Location,
	log zerolog.Logger,
) *ReportUseCase {
	if tz == nil {
		tz = time.Local
	}
	return &ReportUseCase{
		liquorRepo: liquorRepo,
		billRepo:   billRepo,
		tx:         tx,
		tz:         tz,
		log:        log,
	}
}

// DailyReport reconstructs per-day opening and closing stock for every
// (liquor, location) pair across [from, to], both dates "2006-01-02"
// inclusive, along with the day's received and sold figures.
func (uc *ReportUseCase) DailyReport(ctx context.Context, fromStr, toStr string) ([]dto.DayReport, error) {
	from, err := time.ParseInLocation(dayFormat, fromStr, uc.tz)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.ParseInLocation(dayFormat, toStr, uc.tz)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if from.After(to) {
		return nil, domain.ErrInvalidInput
	}

	liquors, err := uc.liquorRepo.List()
	if err != nil {
		return nil, err
	}
	sizes := make(map[string]int, len(liquors))
	brands := make(map[string]string, len(liquors))
	for _, l := range liquors {
		sizes[l.ID] = l.SizeMl
		brands[l.ID] = l.Brand
	}

	// Stock snapshot and event logs must come from one database snapshot: a
	// sale committing between the reads would show up in the log without
	// being absorbed into the records, and the walk would undo it against
	// pre-sale stock.
	var (
		current   map[stock.Key]entity.StockRecord
		sales     []entity.SaleLine
		transfers []entity.Transfer
	)
	err = uc.tx.RunReport(ctx, func(
		stocks repository.StockRepository,
		ledger repository.SaleRepository,
		transferLog repository.TransferRepository,
	) error {
		recs, err := stocks.ListAll()
		if err != nil {
			return err
		}
		current = make(map[stock.Key]entity.StockRecord, len(recs))
		for _, rec := range recs {
			current[stock.Key{LiquorID: rec.LiquorID, Location: rec.Location}] = *rec
		}

		// Everything from the start of the first requested day up to now
		// has to be undone on the way back, including events after the
		// range end.
		horizon := time.Now().In(uc.tz).AddDate(0, 0, 1)
		saleRows, err := ledger.ListBetween(from, horizon)
		if err != nil {
			return err
		}
		transferRows, err := transferLog.ListBetween(from, horizon)
		if err != nil {
			return err
		}
		sales = make([]entity.SaleLine, 0, len(saleRows))
		for _, s := range saleRows {
			sales = append(sales, *s)
		}
		transfers = make([]entity.Transfer, 0, len(transferRows))
		for _, t := range transferRows {
			transfers = append(transfers, *t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	boundaries, err := stock.Reconstruct(current, sizes, sales, transfers, from, to, uc.tz)
	if err != nil {
		uc.log.Error().Err(err).
			Str("from", fromStr).
			Str("to", toStr).
			Msg("stock reconstruction failed, event log inconsistent with current records")
		return nil, err
	}

	return uc.assembleDays(boundaries, sales, transfers, brands), nil
}

// dayActivity received/sold aggregates for one record on one day.
type dayActivity struct {
	receivedBottles int
	soldBottles     int
	pouredMl        int
}

func (uc *ReportUseCase) assembleDays(
	boundaries map[string]stock.Boundary,
	sales []entity.SaleLine,
	transfers []entity.Transfer,
	brands map[string]string,
) []dto.DayReport {
	activity := make(map[string]map[stock.Key]dayActivity)
	touch := func(day string, k stock.Key, fn func(*dayActivity)) {
		if activity[day] == nil {
			activity[day] = make(map[stock.Key]dayActivity)
		}
		a := activity[day][k]
		fn(&a)
		activity[day][k] = a
	}
	for _, s := range sales {
		day := s.Timestamp.In(uc.tz).Format(dayFormat)
		k := stock.Key{LiquorID: s.LiquorID, Location: s.Location}
		switch s.Kind {
		case entity.SaleKindBottle:
			touch(day, k, func(a *dayActivity) { a.soldBottles += s.Quantity })
		default:
			touch(day, k, func(a *dayActivity) { a.pouredMl += s.Quantity })
		}
	}
	for _, t := range transfers {
		day := t.Timestamp.In(uc.tz).Format(dayFormat)
		touch(day, stock.Key{LiquorID: t.LiquorID, Location: t.To}, func(a *dayActivity) {
			a.receivedBottles += t.Bottles
		})
	}

	days := make([]string, 0, len(boundaries))
	for day := range boundaries {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]dto.DayReport, 0, len(days))
	for _, day := range days {
		b := boundaries[day]
		keys := make([]stock.Key, 0, len(b.Opening))
		for k := range b.Opening {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].LiquorID != keys[j].LiquorID {
				return keys[i].LiquorID < keys[j].LiquorID
			}
			return keys[i].Location < keys[j].Location
		})
		report := dto.DayReport{Date: day}
		for _, k := range keys {
			opening := b.Opening[k]
			closing := b.Closing[k]
			act := activity[day][k]
			report.Items = append(report.Items, dto.DayReportItem{
				LiquorID:        k.LiquorID,
				Brand:           brands[k.LiquorID],
				Location:        int(k.Location),
				Opening:         dto.StockLevelDTO{Bottles: opening.Bottles, OpenMl: opening.OpenMl},
				Closing:         dto.StockLevelDTO{Bottles: closing.Bottles, OpenMl: closing.OpenMl},
				ReceivedBottles: act.receivedBottles,
				SoldBottles:     act.soldBottles,
				PouredMl:        act.pouredMl,
			})
		}
		out = append(out, report)
	}
	return out
}

// MonthlyIncome aggregates one calendar month ("2006-01") from the bill
// snapshots: totals plus a per-brand breakdown by pour size. Cocktails appear
// under their drink name.
func (uc *ReportUseCase) MonthlyIncome(ctx context.Context, month string) (*dto.MonthlyReport, error) {
	start, err := time.ParseInLocation("2006-01", month, uc.tz)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	bills, err := uc.billRepo.ListBetween(start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	report := &dto.MonthlyReport{
		Month:      month,
		TotalSales: decimal.Zero,
		BillCount:  len(bills),
	}
	byBrand := make(map[string]*dto.BrandSummary)
	summary := func(brand string) *dto.BrandSummary {
		s, ok := byBrand[brand]
		if !ok {
			s = &dto.BrandSummary{Brand: brand, Revenue: decimal.Zero}
			byBrand[brand] = s
		}
		return s
	}
	for _, bill := range bills {
		report.TotalSales = report.TotalSales.Add(bill.Total)
		for _, it := range bill.Items {
			s := summary(it.Brand)
			s.Revenue = s.Revenue.Add(it.Price)
			switch it.Kind {
			case entity.SaleKindBottle:
				report.TotalBottles += it.Quantity
				s.BottlesSold += it.Quantity
			case entity.SaleKindPour:
				report.TotalPours += it.Quantity
				s.PoursSold += it.Quantity
				if s.PoursBySize == nil {
					s.PoursBySize = make(map[int]int)
				}
				s.PoursBySize[it.PourSizeMl] += it.Quantity
				s.TotalPouredMl += it.PourSizeMl * it.Quantity
			case entity.SaleKindCocktail:
				report.TotalPours += it.Quantity
				s.PoursSold += it.Quantity
				for _, ing := range it.Ingredients {
					s.TotalPouredMl += ing.VolumeMl * it.Quantity
				}
			}
		}
	}

	names := make([]string, 0, len(byBrand))
	for name := range byBrand {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		report.Brands = append(report.Brands, *byBrand[name])
	}
	return report, nil
}
