package bom

import (
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes the bill as a printable A4 table.
func (b *Bill) WritePDF(w io.Writer) error {
	const typeWidth, qtyWidth, lineHeight = 160, 25, 7
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fasteners bill of materials", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Fasteners bill of materials")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(typeWidth, lineHeight, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(qtyWidth, lineHeight, "Qty", "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range b.Rows {
		pdf.CellFormat(typeWidth, lineHeight, r.Designation, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyWidth, lineHeight, strconv.Itoa(r.Count), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(typeWidth, lineHeight, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(qtyWidth, lineHeight, strconv.Itoa(b.Total()), "1", 1, "R", false, 0, "")
	return pdf.Output(w)
}
