package dto

import "github.com/shopspring/decimal"

// StockLevelDTO a (bottles, open ml) pair at a day boundary.
type StockLevelDTO struct {
	Bottles int `json:"bottles"`
	OpenMl  int `json:"openMl"`
}

// DayReportItem reconstructed boundaries for one liquor at one location on one
// day, with the day's received and sold figures for context.
type DayReportItem struct {
	LiquorID        string        `json:"liquorId"`
	Brand           string        `json:"brand"`
	Location        int           `json:"location"`
	Opening         StockLevelDTO `json:"opening"`
	Closing         StockLevelDTO `json:"closing"`
	ReceivedBottles int           `json:"receivedBottles,omitempty"`
	SoldBottles     int           `json:"soldBottles,omitempty"`
	PouredMl        int           `json:"pouredMl,omitempty"`
}

// DayReport one historical day.
type DayReport struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Items []DayReportItem `json:"items"`
}

// BrandSummary per-brand monthly sales breakdown.
type BrandSummary struct {
	Brand         string          `json:"brand"`
	BottlesSold   int             `json:"bottlesSold"`
	PoursSold     int             `json:"poursSold"`
	PoursBySize   map[int]int     `json:"poursBySize,omitempty"`
	TotalPouredMl int             `json:"totalPouredMl"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// MonthlyReport income summary for one calendar month, derived from bill
// snapshots.
type MonthlyReport struct {
	Month        string          `json:"month"` // YYYY-MM
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalBottles int             `json:"totalBottles"`
	TotalPours   int             `json:"totalPours"`
	BillCount    int             `json:"billCount"`
	Brands       []BrandSummary  `json:"brands"`
}
