package reporting

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportMonthlyXLSX renders the monthly income report as an xlsx workbook and
// returns its bytes, ready to stream as an attachment.
func (uc *ReportUseCase) ExportMonthlyXLSX(ctx context.Context, month string) ([]byte, string, error) {
	report, err := uc.MonthlyIncome(ctx, month)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Income " + month
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Brand", "Bottles sold", "Pours sold", "Poured ml", "Revenue"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetRowStyle(sheet, 1, 1, bold)

	row := 2
	for _, b := range report.Brands {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), b.Brand)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.BottlesSold)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.PoursSold)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), b.TotalPouredMl)
		revenue, _ := b.Revenue.Float64()
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), revenue)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.TotalBottles)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), report.TotalPours)
	total, _ := report.TotalSales.Float64()
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), total)
	f.SetRowStyle(sheet, row, row, bold)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), fmt.Sprintf("Bills: %d", report.BillCount))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("income-%s.xlsx", month), nil
}
