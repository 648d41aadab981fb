package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// XLSXSheetName is the worksheet holding the comparison.
const XLSXSheetName = "Swing Pay"

// XLSXFormatter exports the comparison as a spreadsheet: one column per job, one
// row per metric. Amounts are numeric cells so they can be summed.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string      { return "xlsx" }
func (x XLSXFormatter) Extension() string { return "xlsx" }

func (x XLSXFormatter) Format(results *domain.JobComparison) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), XLSXSheetName); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 2},
		},
	})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, err
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, err
	}

	sw := &sheetWriter{f: f}
	sw.set(1, 1, "FIFO Swing Take-Home Pay", titleStyle)

	row := 3
	sw.set(1, row, "Metric", headerStyle)
	for i, p := range results.Jobs {
		sw.set(i+2, row, p.Name, headerStyle)
	}

	textRows := []struct {
		label string
		value func(r *domain.JobResults) string
	}{
		{"Swing", swingLabel},
		{"Pay type", func(r *domain.JobResults) string { return string(r.PayType) }},
		{"Tax rates", func(r *domain.JobResults) string { return r.TaxRegime }},
	}
	for _, tr := range textRows {
		row++
		sw.set(1, row, tr.label, 0)
		for i, p := range results.Jobs {
			sw.set(i+2, row, tr.value(p.Results), 0)
		}
	}

	for _, m := range metrics {
		row++
		sw.set(1, row, m.Label, 0)
		style := moneyStyle
		if m.Kind != kindCurrency {
			style = numberStyle
		}
		for i, p := range results.Jobs {
			v, ok := m.Value(p.Results)
			if !ok {
				sw.set(i+2, row, Placeholder, 0)
				continue
			}
			sw.set(i+2, row, v.Round(4).InexactFloat64(), style)
		}
	}

	if d := results.Delta; d != nil && len(results.Jobs) == 2 {
		row += 2
		sw.set(1, row, fmt.Sprintf("%s vs %s", results.Jobs[1].Name, results.Jobs[0].Name), headerStyle)
		sw.set(2, row, "Difference", headerStyle)
		deltas := []struct {
			label string
			value float64
		}{
			{"Gross per year", d.GrossYear.Round(2).InexactFloat64()},
			{"Net per swing", d.NetSwing.Round(2).InexactFloat64()},
			{"Net per month", d.NetMonth.Round(2).InexactFloat64()},
			{"Net per year", d.NetYear.Round(2).InexactFloat64()},
			{"Super per year", d.RetirementPerYear.Round(2).InexactFloat64()},
		}
		for _, dr := range deltas {
			row++
			sw.set(1, row, dr.label, 0)
			sw.set(2, row, dr.value, moneyStyle)
		}
	}
	if sw.err != nil {
		return nil, sw.err
	}

	if err := f.SetColWidth(XLSXSheetName, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(XLSXSheetName, "B", "C", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetWriter sets cells on the comparison sheet and keeps the first error.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (sw *sheetWriter) set(col, row int, value any, style int) {
	if sw.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		sw.err = err
		return
	}
	if err := sw.f.SetCellValue(XLSXSheetName, cell, value); err != nil {
		sw.err = err
		return
	}
	if style != 0 {
		sw.err = sw.f.SetCellStyle(XLSXSheetName, cell, cell, style)
	}
}
