package export

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"oneway-quote/core/output"
	"oneway-quote/internal/errors"
)

// SheetName is the worksheet holding the breakdown
const SheetName = "Rincian"

// WorkbookRenderer writes the breakdown as an XLSX workbook
type WorkbookRenderer struct{}

// NewWorkbookRenderer creates a workbook renderer
func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

// Render writes one sheet: a header row, one row per invoice line, then
// Subtotal, Diskon and Total.
func (r *WorkbookRenderer) Render(w io.Writer, doc *output.Document) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), SheetName); err != nil {
		return errors.Export("rename sheet", err)
	}

	moneyStyle, err := xl.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return errors.Export("create money style", err)
	}
	boldStyle, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Export("create header style", err)
	}

	header := []interface{}{"Layanan", "Jumlah", "Tarif", "Total"}
	if err := xl.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Export("write header", err)
	}

	rowIdx := 2
	writeRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		rowIdx++
		return xl.SetSheetRow(SheetName, cell, &values)
	}

	for _, line := range doc.Lines() {
		var values []interface{}
		switch line.Kind {
		case output.LineService:
			values = []interface{}{line.Label, line.Count, amount(line.Rate), amount(line.Total)}
		case output.LineLogo:
			values = []interface{}{line.Label + " - " + line.Detail, 1, amount(line.Total), amount(line.Total)}
		default:
			values = []interface{}{line.Label, 1, amount(line.Total), amount(line.Total)}
		}
		if err := writeRow(values); err != nil {
			return errors.Export("write line", err)
		}
	}

	b := doc.Breakdown
	for _, total := range []struct {
		label string
		value decimal.Decimal
	}{
		{"Subtotal", b.Subtotal},
		{"Diskon", b.Discount.Neg()},
		{"Total", b.GrandTotal},
	} {
		if err := writeRow([]interface{}{total.label, nil, nil, amount(total.value)}); err != nil {
			return errors.Export("write totals", err)
		}
	}

	last := rowIdx - 1
	if err := xl.SetCellStyle(SheetName, "C2", cellName("D", last), moneyStyle); err != nil {
		return errors.Export("style amounts", err)
	}
	if err := xl.SetCellStyle(SheetName, "A1", "D1", boldStyle); err != nil {
		return errors.Export("style header", err)
	}
	if err := xl.SetCellStyle(SheetName, cellName("A", last), cellName("D", last), boldStyle); err != nil {
		return errors.Export("style total", err)
	}
	_ = xl.SetColWidth(SheetName, "A", "A", 32)
	_ = xl.SetColWidth(SheetName, "C", "D", 16)

	if err := xl.Write(w); err != nil {
		return errors.Export("write workbook", err)
	}
	return nil
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func cellName(col string, row int) string {
	colNum, _ := excelize.ColumnNameToNumber(col)
	name, _ := excelize.CoordinatesToCellName(colNum, row)
	return name
}
