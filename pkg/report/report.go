// Package report builds downloadable documents from a scenario's normalized
// tables and summary metrics.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/helioview/helioview/pkg/dataset"
	"github.com/helioview/helioview/pkg/types"
)

// BuildSummaryPDF renders a one-page PDF of the scenario's headline metrics.
func BuildSummaryPDF(sc types.Scenario, sum types.Summary, tracking, fixed dataset.Table) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Solar Tracker Performance Summary")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Scenario: %s", sc.Label))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Total Energy (Tracking): %.2f Wh", sum.TrackingEnergyWH))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Energy (Fixed): %.2f Wh", sum.FixedEnergyWH))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Efficiency Gain: %.2f%%", sum.GainPercent))
	pdf.Ln(8)

	// Source table overview
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Table", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "State", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Samples", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range []struct {
		name  string
		table dataset.Table
	}{
		{"tracking", tracking},
		{"fixed", fixed},
	} {
		pdf.CellFormat(40, 6, row.name, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, string(row.table.State()), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", row.table.Rows()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildWorkbook renders an XLSX workbook with a summary sheet plus one sheet
// of normalized columns per loaded table. Empty tables get no sheet.
func BuildWorkbook(sc types.Scenario, sum types.Summary, tracking, fixed, weather dataset.Table) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	f.SetSheetName("Sheet1", summarySheet)

	_ = f.SetCellValue(summarySheet, "A1", "Solar Tracker Performance Summary")
	_ = f.SetCellValue(summarySheet, "A3", "Scenario")
	_ = f.SetCellValue(summarySheet, "B3", sc.Label)
	_ = f.SetCellValue(summarySheet, "A4", "Total Energy Tracking (Wh)")
	_ = f.SetCellValue(summarySheet, "B4", sum.TrackingEnergyWH)
	_ = f.SetCellValue(summarySheet, "A5", "Total Energy Fixed (Wh)")
	_ = f.SetCellValue(summarySheet, "B5", sum.FixedEnergyWH)
	_ = f.SetCellValue(summarySheet, "A6", "Efficiency Gain (%)")
	_ = f.SetCellValue(summarySheet, "B6", sum.GainPercent)

	for _, sheet := range []struct {
		name  string
		table dataset.Table
	}{
		{"tracking", tracking},
		{"fixed", fixed},
		{"weather", weather},
	} {
		if sheet.table.Empty() {
			continue
		}
		if err := writeTableSheet(f, sheet.name, sheet.table); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableSheet(f *excelize.File, name string, t dataset.Table) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	cols := t.Columns()
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		_ = f.SetCellValue(name, cell, col)

		vals := t.Floats(col)
		for row, v := range vals {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}
			_ = f.SetCellValue(name, cell, v)
		}
	}
	return nil
}
