// Package bom aggregates fasteners into a bill of materials keyed by
// designation and writes it out as a spreadsheet or a printable page.
package bom

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/soypat/fasteners"
)

// SheetName is the name of the bill worksheet.
const SheetName = "Fasteners_BOM"

// Item is a fastener and the number of times it is used.
type Item struct {
	fasteners.Spec
	Count int `json:"count" validate:"min=1"`
}

// Row is one line of a bill: a designation and its total count.
type Row struct {
	Designation string `json:"designation"`
	Count       int    `json:"count"`
}

// Bill is a bill of materials sorted by designation.
type Bill struct {
	Rows []Row `json:"rows"`
}

// Build designates every item and adds up the counts of equal designations.
// Left handed fasteners get their own rows.
func Build(items []Item) (*Bill, error) {
	validate := validator.New()
	counts := make(map[string]int)
	for i, it := range items {
		if err := validate.Struct(it); err != nil {
			return nil, fmt.Errorf("bom: item %d: %w", i, err)
		}
		d, err := fasteners.Designate(it.Spec)
		if err != nil {
			return nil, fmt.Errorf("bom: item %d: %w", i, err)
		}
		counts[d] += it.Count
	}
	bill := &Bill{Rows: make([]Row, 0, len(counts))}
	for d, n := range counts {
		bill.Rows = append(bill.Rows, Row{Designation: d, Count: n})
	}
	sort.Slice(bill.Rows, func(i, j int) bool {
		return bill.Rows[i].Designation < bill.Rows[j].Designation
	})
	return bill, nil
}

// Total returns the number of fasteners on the bill.
func (b *Bill) Total() int {
	var n int
	for _, r := range b.Rows {
		n += r.Count
	}
	return n
}
