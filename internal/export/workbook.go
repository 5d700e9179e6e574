// Package export writes ledgers and PTO years as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// moneyFormat is the built-in "0.00" number format.
const moneyFormat = 2

type workbook struct {
	f      *excelize.File
	header int
	money  int
	sheets int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D5C4A1"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating money style: %w", err)
	}
	return &workbook{f: f, header: header, money: money}, nil
}

// addSheet creates a sheet with a bold header row. The first call renames the
// default sheet.
func (w *workbook) addSheet(name string, headers ...string) error {
	if w.sheets == 0 {
		if err := w.f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("renaming default sheet: %w", err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", name, err)
	}
	w.sheets++

	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := w.f.SetSheetRow(name, "A1", &row); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(name, "A1", last, w.header); err != nil {
		return fmt.Errorf("styling %s header: %w", name, err)
	}
	lastCol, _, err := excelize.SplitCellName(last)
	if err != nil {
		return err
	}
	return w.f.SetColWidth(name, "A", lastCol, 16)
}

// setRow writes values at the 1-based row. Decimal values become numeric
// cells formatted with two decimals.
func (w *workbook) setRow(sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if d, ok := v.(decimal.Decimal); ok {
			if err := w.f.SetCellFloat(sheet, cell, d.InexactFloat64(), -1, 64); err != nil {
				return fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
			}
			if err := w.f.SetCellStyle(sheet, cell, cell, w.money); err != nil {
				return fmt.Errorf("styling %s!%s: %w", sheet, cell, err)
			}
			continue
		}
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func (w *workbook) close() {
	w.f.Close()
}

func (w *workbook) writeTo(out io.Writer) error {
	w.f.SetActiveSheet(0)
	if err := w.f.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
