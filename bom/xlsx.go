package bom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soypat/fasteners"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the bill as a workbook with a "Type" and a "Qty" column.
func (b *Bill) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "A", 60); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]interface{}{"Type", "Qty"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "B1", header); err != nil {
		return err
	}
	for i, r := range b.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]interface{}{r.Designation, r.Count}); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// ReadItems reads items from the first sheet of a workbook. The first row is
// a header; each following row holds type, diameter, length and count.
// Blank rows are skipped.
func ReadItems(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("bom: %w", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("bom: %w", err)
	}
	var items []Item
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 4 {
			return nil, fmt.Errorf("bom: %s row %d: want type, diameter, length and count", sheet, i+1)
		}
		spec, err := fasteners.NewSpec(row[0], strings.TrimSpace(row[1]), strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("bom: %s row %d: %w", sheet, i+1, err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("bom: %s row %d: count: %w", sheet, i+1, err)
		}
		items = append(items, Item{Spec: spec, Count: n})
	}
	return items, nil
}
