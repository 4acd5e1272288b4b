package stock

import (
	"fmt"
	"time"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
)

// Key addresses one stock record in the reconstruction working set.
type Key struct {
	LiquorID string
	Location domain.Location
}

// Boundary is the reconstructed stock at one day's edges, per record.
type Boundary struct {
	Opening map[Key]entity.StockRecord
	Closing map[Key]entity.StockRecord
}

const dayFormat = "2006-01-02"

// Reconstruct derives opening/closing stock per calendar day by walking
// backwards from the current snapshot, undoing each day's sale lines (via
// Restore, the exact inverse of the pour algorithm) and then its transfers.
//
// The reported opening of a day still contains bottles that arrived by
// transfer during that day: they show up as received that day rather than
// being baked into the previous day's closing, which is taken after the
// transfers are undone.
//
// Sales and transfers dated after `to` are undone silently so the walk starts
// from a state consistent with the end of the requested range. Days in
// [from, to] with no recorded activity report opening == closing.
func Reconstruct(
	current map[Key]entity.StockRecord,
	sizes map[string]int,
	sales []entity.SaleLine,
	transfers []entity.Transfer,
	from, to time.Time,
	tz *time.Location,
) (map[string]Boundary, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidInput
	}
	if tz == nil {
		tz = time.Local
	}

	salesByDay := make(map[string][]entity.SaleLine)
	for _, s := range sales {
		day := s.Timestamp.In(tz).Format(dayFormat)
		salesByDay[day] = append(salesByDay[day], s)
	}
	transfersByDay := make(map[string][]entity.Transfer)
	latest := to.In(tz)
	for _, t := range transfers {
		day := t.Timestamp.In(tz).Format(dayFormat)
		transfersByDay[day] = append(transfersByDay[day], t)
		if t.Timestamp.In(tz).After(latest) {
			latest = t.Timestamp.In(tz)
		}
	}
	for _, s := range sales {
		if s.Timestamp.In(tz).After(latest) {
			latest = s.Timestamp.In(tz)
		}
	}

	working := make(map[Key]entity.StockRecord, len(current))
	for k, rec := range current {
		working[k] = rec
	}

	first := dayStart(from.In(tz))
	last := dayStart(to.In(tz))
	out := make(map[string]Boundary)

	for day := dayStart(latest); !day.Before(first); day = day.AddDate(0, 0, -1) {
		dayKey := day.Format(dayFormat)
		inRange := !day.After(last)

		if inRange {
			out[dayKey] = Boundary{Closing: copyRecords(working)}
		}

		for _, s := range salesByDay[dayKey] {
			if err := undoSale(working, sizes, s); err != nil {
				return nil, fmt.Errorf("replaying sales of %s: %w", dayKey, err)
			}
		}
		if inRange {
			b := out[dayKey]
			b.Opening = copyRecords(working)
			out[dayKey] = b
		}

		for _, t := range transfersByDay[dayKey] {
			if err := undoTransfer(working, t); err != nil {
				return nil, fmt.Errorf("replaying transfers of %s: %w", dayKey, err)
			}
		}
	}
	return out, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func copyRecords(m map[Key]entity.StockRecord) map[Key]entity.StockRecord {
	out := make(map[Key]entity.StockRecord, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// undoSale adds a sale line's consumption back onto the working set.
func undoSale(working map[Key]entity.StockRecord, sizes map[string]int, s entity.SaleLine) error {
	if s.LiquorID == "" {
		// Ledger line without a stock effect (should not happen); skip.
		return nil
	}
	key := Key{LiquorID: s.LiquorID, Location: s.Location}
	rec, ok := working[key]
	if !ok {
		rec = entity.StockRecord{LiquorID: s.LiquorID, Location: s.Location}
	}
	var err error
	switch s.Kind {
	case entity.SaleKindBottle:
		rec, err = RestoreBottles(rec, s.Quantity)
	case entity.SaleKindPour, entity.SaleKindCocktail:
		size, found := sizes[s.LiquorID]
		if !found {
			return fmt.Errorf("sale line %s: unknown bottle size for liquor %s", s.ID, s.LiquorID)
		}
		rec, err = Restore(rec, size, s.Quantity)
	default:
		return fmt.Errorf("sale line %s: unknown kind %q", s.ID, s.Kind)
	}
	if err != nil {
		return fmt.Errorf("sale line %s: %w", s.ID, err)
	}
	working[key] = rec
	return nil
}

// undoTransfer debits the destination and credits the source. A destination
// holding fewer bottles than the transfer moved means the logs and snapshot
// disagree; that is fatal to the report.
func undoTransfer(working map[Key]entity.StockRecord, t entity.Transfer) error {
	destKey := Key{LiquorID: t.LiquorID, Location: t.To}
	dest, ok := working[destKey]
	if !ok || dest.Bottles < t.Bottles {
		return fmt.Errorf("transfer %s: destination %s holds fewer bottles than were transferred: %w",
			t.ID, t.To, domain.ErrConflict)
	}
	dest.Bottles -= t.Bottles
	working[destKey] = dest

	srcKey := Key{LiquorID: t.LiquorID, Location: t.From}
	src, ok := working[srcKey]
	if !ok {
		src = entity.StockRecord{LiquorID: t.LiquorID, Location: t.From}
	}
	src.Bottles += t.Bottles
	working[srcKey] = src
	return nil
}
